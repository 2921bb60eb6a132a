package pricing

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ChartRow is one point on the shared time axis. Prices is keyed by series label.
type ChartRow struct {
	Date   time.Time
	Prices map[string]decimal.Decimal
}

func (r ChartRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   string                     `json:"date"`
		Prices map[string]decimal.Decimal `json:"prices"`
	}{
		Date:   r.Date.Format(DateLayout),
		Prices: r.Prices,
	})
}

// BuildChartRows buckets samples by day and labels them for charting.
func BuildChartRows(samples []Sample, entities []Entity) []ChartRow {
	return RowsFromBuckets(Normalize(samples, entities), entities)
}

// RowsFromBuckets resolves bucket entries to series labels. Prices of sneakers
// missing from entities are dropped. When two entities share a label the one
// listed later wins.
func RowsFromBuckets(buckets []Bucket, entities []Entity) []ChartRow {
	rows := make([]ChartRow, 0, len(buckets))
	for _, b := range buckets {
		row := ChartRow{Date: b.Date, Prices: make(map[string]decimal.Decimal, len(b.Prices))}
		for _, e := range entities {
			if price, ok := b.Prices[e.ID]; ok {
				row.Prices[e.Label()] = price
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}
