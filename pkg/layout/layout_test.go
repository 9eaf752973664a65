package layout

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/datanate/pkg/metric"
)

func day(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

type metricSpec struct {
	key      string
	category string
	series   []metric.DataPoint
}

func newRegistry(t *testing.T, cats []metric.Category, metrics ...metricSpec) *metric.Registry {
	t.Helper()
	reg := metric.NewRegistry()
	reg.SetCategories(cats)
	for _, m := range metrics {
		err := reg.Add(metric.Metric{
			Key:        m.key,
			Definition: metric.Definition{Category: m.category},
			Series:     m.series,
		})
		if err != nil {
			t.Fatalf("Add(%s): %v", m.key, err)
		}
	}
	return reg
}

func ids(ms []Summary) string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return strings.Join(out, ",")
}

func TestGroupPreservesDeclarationOrder(t *testing.T) {
	reg := newRegistry(t, nil,
		metricSpec{key: "C", category: "growth"},
		metricSpec{key: "A", category: "growth"},
		metricSpec{key: "B", category: "growth"},
	)
	l := Group(reg, map[string]int{"A": 0, "B": 0, "C": 0})

	sec, ok := l.Section("growth")
	if !ok {
		t.Fatal("growth section missing")
	}
	if len(sec.Tiers) != 1 {
		t.Fatalf("tiers = %d, want 1", len(sec.Tiers))
	}
	if got := ids(sec.Tiers[0].Metrics); got != "C,A,B" {
		t.Errorf("order = %s, want C,A,B", got)
	}
}

func TestGroupTiersAscending(t *testing.T) {
	reg := newRegistry(t, nil,
		metricSpec{key: "churn", category: "growth"},
		metricSpec{key: "revenue", category: "growth"},
		metricSpec{key: "signups", category: "growth"},
	)
	l := Group(reg, map[string]int{"churn": 2, "revenue": 0, "signups": 1})

	sec, _ := l.Section("growth")
	var got []int
	for _, tg := range sec.Tiers {
		got = append(got, tg.Tier)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("tiers = %v, want [0 1 2]", got)
	}
	if sec.Tiers[2].Metrics[0].ID != "churn" || sec.Tiers[2].Metrics[0].Tier != 2 {
		t.Errorf("tier 2 = %+v", sec.Tiers[2].Metrics)
	}
}

func TestGroupCategoryOrder(t *testing.T) {
	cats := []metric.Category{
		{Key: "retention", Name: "Retention"},
		{Key: "empty", Name: "Empty"},
		{Key: "growth", Name: "Growth", Description: "Top of funnel"},
	}
	reg := newRegistry(t, cats,
		metricSpec{key: "ops1", category: "ops"},
		metricSpec{key: "signups", category: "growth"},
		metricSpec{key: "churn", category: "retention"},
		metricSpec{key: "misc1", category: "misc"},
	)
	l := Group(reg, nil)

	var keys []string
	for _, s := range l.Sections {
		keys = append(keys, s.Key)
	}
	if got := strings.Join(keys, ","); got != "retention,growth,ops,misc" {
		t.Errorf("sections = %s, want retention,growth,ops,misc", got)
	}
	if l.Sections[1].Name != "Growth" || l.Sections[1].Description != "Top of funnel" {
		t.Errorf("growth section = %+v", l.Sections[1])
	}
	if l.Sections[2].Name != "ops" {
		t.Errorf("undeclared section name = %q, want ops", l.Sections[2].Name)
	}
	if l.MetricCount() != 4 {
		t.Errorf("MetricCount = %d, want 4", l.MetricCount())
	}
}

func TestGroupLatestValue(t *testing.T) {
	reg := newRegistry(t, nil,
		metricSpec{key: "empty", category: "growth"},
		metricSpec{key: "zero", category: "growth", series: []metric.DataPoint{
			{Timestamp: day("2024-01-01"), Value: 5},
			{Timestamp: day("2024-02-01"), Value: 0},
		}},
	)
	l := Group(reg, nil)
	ms := l.Sections[0].Tiers[0].Metrics

	if ms[0].LatestValue != nil || ms[0].HasData() {
		t.Errorf("empty series latest = %v, want nil", ms[0].LatestValue)
	}
	if ms[0].DataPoints != 0 {
		t.Errorf("empty series data points = %d", ms[0].DataPoints)
	}
	if ms[1].LatestValue == nil || *ms[1].LatestValue != 0 {
		t.Errorf("zero series latest = %v, want 0", ms[1].LatestValue)
	}
	if ms[1].DataPoints != 2 {
		t.Errorf("data points = %d, want 2", ms[1].DataPoints)
	}

	data, err := json.Marshal(ms[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"latest_value":null`) {
		t.Errorf("absent latest value not encoded as null: %s", data)
	}
}

func TestMetricsPayload(t *testing.T) {
	reg := newRegistry(t, nil,
		metricSpec{key: "revenue", category: "growth", series: []metric.DataPoint{
			{Timestamp: day("2024-01-01"), Value: 100},
			{Timestamp: day("2024-02-01"), Value: 120.5},
		}},
		metricSpec{key: "signups", category: "growth"},
	)
	payload := MetricsPayload(reg, map[string]int{"revenue": 0, "signups": 1})

	rev := payload["revenue"]
	if len(rev.Data) != 2 || rev.Data[1].Date != "2024-02-01" || rev.Data[1].Value != 120.5 {
		t.Errorf("revenue data = %+v", rev.Data)
	}
	if payload["signups"].Config.Tier != 1 {
		t.Errorf("signups tier = %d, want 1", payload["signups"].Config.Tier)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		`"signups":{"config":{`,
		`"tier":1`,
		`"chart_type":"line"`,
		`"data":[]`,
		`{"date":"2024-01-01","value":100}`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("payload missing %s:\n%s", want, s)
		}
	}
}
