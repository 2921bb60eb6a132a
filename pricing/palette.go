package pricing

var seriesPalette = [...]string{
	"#8884d8",
	"#82ca9d",
	"#ffc658",
	"#ff7300",
	"#0088fe",
	"#00c49f",
	"#ffbb28",
	"#ff8042",
}

// SeriesColor cycles through the palette by series index.
func SeriesColor(i int) string {
	n := len(seriesPalette)
	return seriesPalette[((i%n)+n)%n]
}

// Series describes one chart line.
type Series struct {
	EntityID uint   `json:"sneaker_id"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

// BuildSeries returns one series per entity in selection order.
func BuildSeries(entities []Entity) []Series {
	series := make([]Series, 0, len(entities))
	for i, e := range entities {
		series = append(series, Series{EntityID: e.ID, Label: e.Label(), Color: SeriesColor(i)})
	}
	return series
}
