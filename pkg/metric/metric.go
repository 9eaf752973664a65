// Package metric holds the in-memory model of parsed metric definitions and
// their time series.
//
// A [Registry] is filled once per build by a loader (see package io) and is
// read-only afterwards. It preserves declaration order, which drives the
// order of metrics within a tier on the dashboard.
package metric

import (
	"slices"
	"time"
)

// ChartType selects how a metric is drawn.
type ChartType string

// Supported chart types.
const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// TimeDimension is the granularity of a metric's time series.
type TimeDimension string

// Supported time dimensions.
const (
	Daily   TimeDimension = "daily"
	Weekly  TimeDimension = "weekly"
	Monthly TimeDimension = "monthly"
)

// Relationships declares the metrics that influence a metric.
type Relationships struct {
	InfluencedBy []string `yaml:"influenced_by" toml:"influenced_by" json:"influenced_by,omitempty"`
}

// Definition is one authored metric definition.
type Definition struct {
	Category      string         `yaml:"category" toml:"category" json:"category" validate:"required"`
	DisplayName   string         `yaml:"display_name" toml:"display_name" json:"display_name" validate:"required"`
	Unit          string         `yaml:"unit" toml:"unit" json:"unit"`
	ChartType     ChartType      `yaml:"chart_type" toml:"chart_type" json:"chart_type" validate:"oneof=line bar"`
	Target        *float64       `yaml:"target" toml:"target" json:"target,omitempty"`
	TimeDimension TimeDimension  `yaml:"time_dimension" toml:"time_dimension" json:"time_dimension" validate:"oneof=daily weekly monthly"`
	File          string         `yaml:"file" toml:"file" json:"file,omitempty"`
	Relationships *Relationships `yaml:"relationships" toml:"relationships" json:"relationships,omitempty"`
}

// InfluencedBy returns the declared dependencies, or nil when none are declared.
func (d Definition) InfluencedBy() []string {
	if d.Relationships == nil {
		return nil
	}
	return d.Relationships.InfluencedBy
}

// DataPoint is one observation of a metric.
type DataPoint struct {
	Timestamp time.Time
	Value     float64
}

// Metric is a definition together with its time series.
// Series is ordered by timestamp ascending; points sharing a timestamp keep
// the order they had in the source.
type Metric struct {
	Key        string
	Definition Definition
	Series     []DataPoint
}

// Latest returns the last data point and true, or a zero point and false
// when the series is empty.
func (m *Metric) Latest() (DataPoint, bool) {
	if len(m.Series) == 0 {
		return DataPoint{}, false
	}
	return m.Series[len(m.Series)-1], true
}

// Category is a dashboard section declared in the definition file.
type Category struct {
	Key         string `yaml:"key" toml:"key" json:"key"`
	Name        string `yaml:"name" toml:"name" json:"name"`
	Description string `yaml:"description" toml:"description" json:"description,omitempty"`
}

// SortSeries orders points by timestamp, keeping source order for ties.
func SortSeries(points []DataPoint) {
	slices.SortStableFunc(points, func(a, b DataPoint) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}
