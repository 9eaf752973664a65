package layout

import (
	"github.com/matzehuels/datanate/pkg/influence"
	"github.com/matzehuels/datanate/pkg/metric"
)

// DateFormat is the layout of dates in the chart payload.
const DateFormat = "2006-01-02"

// Config is a metric definition with its computed tier, as sent to the
// client.
type Config struct {
	metric.Definition
	Tier int `json:"tier"`
}

// Point is one serialized data point.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MetricData is the chart payload of one metric.
type MetricData struct {
	Config Config  `json:"config"`
	Data   []Point `json:"data"`
}

// MetricsPayload returns the chart payload keyed by metric ID. Data is
// never nil, so a metric without points encodes as an empty array.
func MetricsPayload(reg *metric.Registry, tiers map[string]int) map[string]MetricData {
	out := make(map[string]MetricData, reg.Len())
	for _, m := range reg.Metrics() {
		data := make([]Point, len(m.Series))
		for i, p := range m.Series {
			data[i] = Point{Date: p.Timestamp.Format(DateFormat), Value: p.Value}
		}
		out[m.Key] = MetricData{
			Config: Config{Definition: m.Definition, Tier: tiers[m.Key]},
			Data:   data,
		}
	}
	return out
}

// RelationshipsPayload returns the influence lists keyed by metric ID.
func RelationshipsPayload(reg *metric.Registry) map[string]influence.Relationship {
	return influence.Relationships(reg)
}
