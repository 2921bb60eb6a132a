package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeStats_NoSamplesFallsBackToRetail(t *testing.T) {
	e := testEntity(1, "Air Jordan 4", "Bred", 120)

	s := ComputeStats(e, nil)

	for name, got := range map[string]decimal.Decimal{
		"current": s.CurrentPrice,
		"min":     s.MinPrice,
		"max":     s.MaxPrice,
		"avg":     s.AvgPrice,
	} {
		if !got.Equal(dec(120)) {
			t.Errorf("%s = %s, want 120", name, got)
		}
	}
	if !s.PriceChange.IsZero() {
		t.Errorf("price change = %s", s.PriceChange)
	}
	if !s.PriceChangePercent.Valid || !s.PriceChangePercent.Decimal.IsZero() {
		t.Errorf("price change percent = %+v", s.PriceChangePercent)
	}
	if s.SampleCount != 0 {
		t.Errorf("sample count = %d", s.SampleCount)
	}
}

func TestComputeStats_Aggregates(t *testing.T) {
	e := testEntity(1, "Air Jordan 4", "Bred", 100)
	samples := []Sample{
		sample(t, 1, 100, "2025-01-01T00:00:00Z"),
		sample(t, 1, 120, "2025-01-02T00:00:00Z"),
		sample(t, 1, 140, "2025-01-03T00:00:00Z"),
	}

	s := ComputeStats(e, samples)

	tests := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"avg", s.AvgPrice, 120},
		{"min", s.MinPrice, 100},
		{"max", s.MaxPrice, 140},
		{"current", s.CurrentPrice, 140},
		{"change", s.PriceChange, 40},
	}
	for _, tt := range tests {
		if !tt.got.Equal(dec(tt.want)) {
			t.Errorf("%s = %s, want %d", tt.name, tt.got, tt.want)
		}
	}
	if !s.PriceChangePercent.Valid || !s.PriceChangePercent.Decimal.Equal(decimal.RequireFromString("40.0")) {
		t.Errorf("percent = %+v, want 40", s.PriceChangePercent)
	}
	if s.SampleCount != 3 {
		t.Errorf("sample count = %d", s.SampleCount)
	}
}

func TestComputeStats_CurrentIsLastInInputOrder(t *testing.T) {
	e := testEntity(1, "Dunk Low", "Panda", 110)
	samples := []Sample{
		sample(t, 1, 130, "2025-01-03T00:00:00Z"),
		sample(t, 1, 90, "2025-01-01T00:00:00Z"),
	}

	if got := ComputeStats(e, samples).CurrentPrice; !got.Equal(dec(90)) {
		t.Errorf("current = %s, want 90 (last given)", got)
	}
	if got := ComputeStats(e, SortSamples(samples)).CurrentPrice; !got.Equal(dec(130)) {
		t.Errorf("sorted current = %s, want 130", got)
	}
}

func TestComputeStats_FiltersOtherEntities(t *testing.T) {
	e := testEntity(2, "Samba", "OG", 100)
	samples := []Sample{
		sample(t, 1, 999, "2025-01-01T00:00:00Z"),
		sample(t, 2, 80, "2025-01-02T00:00:00Z"),
		sample(t, 1, 1, "2025-01-03T00:00:00Z"),
	}

	s := ComputeStats(e, samples)
	if !s.CurrentPrice.Equal(dec(80)) || !s.MaxPrice.Equal(dec(80)) || !s.MinPrice.Equal(dec(80)) {
		t.Errorf("stats leaked other sneakers: %+v", s)
	}
	if !s.PriceChangePercent.Decimal.Equal(dec(-20)) {
		t.Errorf("percent = %s, want -20", s.PriceChangePercent.Decimal)
	}
}

func TestComputeStats_ZeroRetailMarksPercentUnavailable(t *testing.T) {
	e := testEntity(1, "Sample Pair", "Promo", 0)
	samples := []Sample{sample(t, 1, 50, "2025-01-01T00:00:00Z")}

	s := ComputeStats(e, samples)
	if s.PriceChangePercent.Valid {
		t.Errorf("percent should be unavailable, got %s", s.PriceChangePercent.Decimal)
	}
	if !s.PriceChange.Equal(dec(50)) {
		t.Errorf("change = %s, want 50", s.PriceChange)
	}

	raw, err := s.PriceChangePercent.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Errorf("json = %s, want null", raw)
	}
}

func TestPercentChange(t *testing.T) {
	if _, err := PercentChange(dec(10), decimal.Zero); !errors.Is(err, ErrZeroRetailPrice) {
		t.Errorf("expected ErrZeroRetailPrice, got %v", err)
	}
	got, err := PercentChange(dec(150), dec(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec(-25)) {
		t.Errorf("got %s, want -25", got)
	}
}

func TestComputeStats_OptionalFieldDefaults(t *testing.T) {
	e := testEntity(1, "Air Max 95", "Neon", 170)
	s := ComputeStats(e, nil)
	if s.ReleaseDate != "Unknown" || s.SizeOptions != "N/A" || s.Rating != 0 {
		t.Errorf("defaults = %q %q %d", s.ReleaseDate, s.SizeOptions, s.Rating)
	}

	release, sizes, rating := "2019", "8-12", 4
	e.ReleaseDate, e.SizeOptions, e.Rating = &release, &sizes, &rating
	s = ComputeStats(e, nil)
	if s.ReleaseDate != "2019" || s.SizeOptions != "8-12" || s.Rating != 4 {
		t.Errorf("fields = %q %q %d", s.ReleaseDate, s.SizeOptions, s.Rating)
	}
}

func TestSortSamplesDoesNotMutateInput(t *testing.T) {
	in := []Sample{
		sample(t, 1, 3, "2025-01-03T00:00:00Z"),
		sample(t, 1, 1, "2025-01-01T00:00:00Z"),
	}
	out := SortSamples(in)
	if !in[0].Price.Equal(dec(3)) {
		t.Error("input was reordered")
	}
	if !out[0].Price.Equal(dec(1)) || !out[1].Price.Equal(dec(3)) {
		t.Errorf("unexpected order %v", out)
	}
}
