package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Bucket holds the price of every sneaker sampled on one UTC day.
type Bucket struct {
	Date   time.Time
	Prices map[uint]decimal.Decimal
}

type bucketCell struct {
	price decimal.Decimal
	at    time.Time
}

// BucketDate truncates t to midnight UTC.
func BucketDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Normalize groups samples into day buckets ordered by date. Within a bucket
// the latest sample of a sneaker wins; equal timestamps keep the one received last.
// Days without a sample for some sneaker simply lack its key.
func Normalize(samples []Sample, entities []Entity) []Bucket {
	if len(samples) == 0 || len(entities) == 0 {
		return []Bucket{}
	}

	byDay := make(map[time.Time]map[uint]bucketCell)
	for _, s := range samples {
		day := BucketDate(s.ObservedAt)
		cells, ok := byDay[day]
		if !ok {
			cells = make(map[uint]bucketCell)
			byDay[day] = cells
		}
		if prev, ok := cells[s.EntityID]; ok && s.ObservedAt.Before(prev.at) {
			continue
		}
		cells[s.EntityID] = bucketCell{price: s.Price, at: s.ObservedAt}
	}

	buckets := make([]Bucket, 0, len(byDay))
	for day, cells := range byDay {
		prices := make(map[uint]decimal.Decimal, len(cells))
		for id, cell := range cells {
			prices[id] = cell.price
		}
		buckets = append(buckets, Bucket{Date: day, Prices: prices})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
	return buckets
}
