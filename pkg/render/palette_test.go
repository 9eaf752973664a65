package render

import "testing"

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier int
		want string
	}{
		{0, "#FF6B6B"},
		{1, "#FFD93D"},
		{2, "#6BCF7F"},
		{3, "#9B59B6"},
		{4, "#E67E22"},
		{5, "#888"},
		{-1, "#888"},
	}
	for _, tt := range tests {
		if got := TierColor(tt.tier); got != tt.want {
			t.Errorf("TierColor(%d) = %s, want %s", tt.tier, got, tt.want)
		}
	}
}
