// Package timeseries provides observation series data structures and utilities.
//
// This package includes the Series type for representing paired (x, y)
// signal observations, along with functions for data loading and summary
// statistics.
//
// # Creating a Series
//
// Create an observation series from paired slices:
//
//	x := []float64{0, 1, 2, 3, 4}
//	y := []float64{1.0, 1.8, 2.3, 2.6, 2.8}
//	series, err := timeseries.New(x, y)
//
// Or from signal values alone, with unit time steps:
//
//	series := timeseries.FromY(y)
//
// # Loading from CSV
//
// Load observations from CSV files:
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
// Customize the column names and format:
//
//	opts := &timeseries.CSVOptions{
//	    XColumn:   "time",
//	    YColumn:   "signal",
//	    HasHeader: true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics of the observed signal:
//
//	mean := series.MeanY()
//	std := series.StdY()
//	min := series.MinY()
//	max := series.MaxY()
//	lo, hi := series.Span() // extent of the time variable
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	clone := series.Copy()
package timeseries
