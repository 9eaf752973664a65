// Package io reads metric definitions and time series from disk and writes
// JSON build outputs.
//
// # Definition Files
//
// Definitions are YAML (.yaml, .yml) or TOML (.toml). Both formats carry an
// optional ordered list of categories and an ordered mapping of metrics:
//
//	categories:
//	  - key: growth
//	    name: Growth
//	metrics:
//	  revenue:
//	    category: growth
//	    display_name: Revenue
//	    unit: USD
//	    chart_type: line
//	    time_dimension: monthly
//	    file: revenue.csv
//	  signups:
//	    category: growth
//	    relationships:
//	      influenced_by: [revenue]
//
// The order of keys under metrics is significant: it is the order metrics
// appear within a tier on the dashboard. Both parsers preserve it.
//
// # Series Files
//
// Each metric reads a CSV file (default <key>.csv in the data directory)
// with a header row naming a timestamp column and a value column. Dates use
// YYYY-MM-DD; YYYY-MM and RFC 3339 are accepted as well. Points are stable
// sorted by date, so duplicate dates keep the order of the file.
//
// A missing series file is not an error: [LoadRegistry] records a
// MISSING_SERIES warning and keeps the metric with an empty series.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write indented JSON. Go's encoder sorts map
// keys, so identical values always produce identical bytes.
package io
