// Package seed loads the demo dataset from CSV files into the database.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"stride/logger"
	"stride/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TimestampLayout is the format of price_history.csv timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

const priceBatchSize = 100

// ErrMissingFile is returned when one of the seed CSV files does not exist.
var ErrMissingFile = errors.New("seed: csv file not found")

var files = []string{"retailer", "brand", "user", "sneaker", "price_history"}

// Summary counts the rows loaded per table.
type Summary struct {
	Retailers    int `json:"retailers"`
	Brands       int `json:"brands"`
	Users        int `json:"users"`
	Sneakers     int `json:"sneakers"`
	PriceHistory int `json:"price_history"`
	Favorites    int `json:"favorites"`
}

type loader struct {
	tx  *gorm.DB
	dir string
	rng *rand.Rand
	log *logger.Entry

	retailers map[int]uint
	brands    map[int]uint
	users     map[int]uint
	sneakers  map[int]uint
}

// FromCSV replaces every table with the contents of the CSV files in dir.
// All work happens in one transaction. rng picks the demo favorites; nil
// uses a time seeded source.
func FromCSV(db *gorm.DB, dir string, rng *rand.Rand) (*Summary, error) {
	for _, name := range files {
		path := filepath.Join(dir, name+".csv")
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	l := &loader{
		tx:        tx,
		dir:       dir,
		rng:       rng,
		log:       logger.GetLogger().WithComponent("seed"),
		retailers: make(map[int]uint),
		brands:    make(map[int]uint),
		users:     make(map[int]uint),
		sneakers:  make(map[int]uint),
	}

	summary, err := l.run()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	l.log.WithFields(logger.Fields{
		"retailers":     summary.Retailers,
		"brands":        summary.Brands,
		"users":         summary.Users,
		"sneakers":      summary.Sneakers,
		"price_history": summary.PriceHistory,
		"favorites":     summary.Favorites,
	}).Info("database seeded")
	return summary, nil
}

func (l *loader) run() (*Summary, error) {
	if err := l.clear(); err != nil {
		return nil, err
	}

	var (
		s   Summary
		err error
	)
	steps := []struct {
		name  string
		count *int
		load  func() (int, error)
	}{
		{"retailers", &s.Retailers, l.loadRetailers},
		{"brands", &s.Brands, l.loadBrands},
		{"users", &s.Users, l.loadUsers},
		{"sneakers", &s.Sneakers, l.loadSneakers},
		{"price history", &s.PriceHistory, l.loadPriceHistory},
		{"favorites", &s.Favorites, l.createFavorites},
	}
	for _, step := range steps {
		if *step.count, err = step.load(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", step.name, err)
		}
	}
	return &s, nil
}

// clear deletes children before parents.
func (l *loader) clear() error {
	for _, model := range []interface{}{
		&models.Favorite{},
		&models.PriceHistory{},
		&models.Sneaker{},
		&models.Brand{},
		&models.Retailer{},
		&models.User{},
	} {
		if err := l.tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}
	return nil
}

func (l *loader) readCSV(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(l.dir, name+".csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optional(row []string, i int) *string {
	v := field(row, i)
	if v == "" {
		return nil
	}
	return &v
}

func (l *loader) warn(file string, line int, err error) {
	l.log.WithError(err).WithFields(logger.Fields{"file": file, "line": line}).Warn("skipping row")
}

func (l *loader) loadRetailers() (int, error) {
	rows, err := l.readCSV("retailer")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		csvID, err := strconv.Atoi(field(row, 0))
		if err != nil {
			l.warn("retailer", i+1, err)
			continue
		}
		retailer := models.Retailer{
			Name:     field(row, 1),
			Location: optional(row, 2),
			Website:  optional(row, 3),
		}
		if err := l.tx.Create(&retailer).Error; err != nil {
			return 0, err
		}
		l.retailers[csvID] = retailer.RetailerID
	}
	return len(l.retailers), nil
}

func (l *loader) loadBrands() (int, error) {
	rows, err := l.readCSV("brand")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		csvID, err := strconv.Atoi(field(row, 0))
		if err != nil {
			l.warn("brand", i+1, err)
			continue
		}
		csvRetailerID, err := strconv.Atoi(field(row, 3))
		if err != nil {
			l.warn("brand", i+1, err)
			continue
		}
		retailerID, ok := l.retailers[csvRetailerID]
		if !ok {
			l.warn("brand", i+1, fmt.Errorf("retailer %d not found for brand %s", csvRetailerID, field(row, 1)))
			continue
		}
		brand := models.Brand{
			Name:       field(row, 1),
			Website:    optional(row, 2),
			RetailerID: retailerID,
		}
		if err := l.tx.Create(&brand).Error; err != nil {
			return 0, err
		}
		l.brands[csvID] = brand.BrandID
	}
	return len(l.brands), nil
}

func (l *loader) loadUsers() (int, error) {
	rows, err := l.readCSV("user")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		csvID, err := strconv.Atoi(field(row, 0))
		if err != nil {
			l.warn("user", i+1, err)
			continue
		}
		user := models.User{Name: field(row, 1), Email: field(row, 2)}
		if err := user.HashPassword(field(row, 3)); err != nil {
			return 0, err
		}
		if err := l.tx.Create(&user).Error; err != nil {
			return 0, err
		}
		l.users[csvID] = user.UserID
	}
	return len(l.users), nil
}

func (l *loader) loadSneakers() (int, error) {
	rows, err := l.readCSV("sneaker")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		sneaker, csvID, err := l.parseSneaker(row)
		if err != nil {
			l.warn("sneaker", i+1, err)
			continue
		}
		if err := l.tx.Create(&sneaker).Error; err != nil {
			return 0, err
		}
		l.sneakers[csvID] = sneaker.SneakerID
	}
	return len(l.sneakers), nil
}

// parseSneaker reads sneaker_id,name,sku,release_year,colorway,available_sizes,price,ratings,brand_id.
func (l *loader) parseSneaker(row []string) (models.Sneaker, int, error) {
	csvID, err := strconv.Atoi(field(row, 0))
	if err != nil {
		return models.Sneaker{}, 0, err
	}
	csvBrandID, err := strconv.Atoi(field(row, 8))
	if err != nil {
		return models.Sneaker{}, 0, err
	}
	brandID, ok := l.brands[csvBrandID]
	if !ok {
		return models.Sneaker{}, 0, fmt.Errorf("brand %d not found for sneaker %s", csvBrandID, field(row, 1))
	}
	price, err := decimal.NewFromString(field(row, 6))
	if err != nil {
		return models.Sneaker{}, 0, fmt.Errorf("invalid price %q: %w", field(row, 6), err)
	}

	sneaker := models.Sneaker{
		Name:           field(row, 1),
		SKU:            field(row, 2),
		ReleaseDate:    optional(row, 3),
		Colorway:       optional(row, 4),
		AvailableSizes: optional(row, 5),
		Price:          price,
		BrandID:        brandID,
	}
	if raw := field(row, 7); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return models.Sneaker{}, 0, fmt.Errorf("invalid rating %q: %w", raw, err)
		}
		if rating < 1 || rating > 5 {
			return models.Sneaker{}, 0, fmt.Errorf("rating %d out of range 1-5", rating)
		}
		sneaker.Ratings = &rating
	}
	return sneaker, csvID, nil
}

func (l *loader) loadPriceHistory() (int, error) {
	rows, err := l.readCSV("price_history")
	if err != nil {
		return 0, err
	}

	batch := make([]models.PriceHistory, 0, priceBatchSize)
	loaded := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := l.tx.CreateInBatches(batch, priceBatchSize).Error; err != nil {
			return err
		}
		loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows {
		csvSneakerID, err := strconv.Atoi(field(row, 1))
		if err != nil {
			l.warn("price_history", i+1, err)
			continue
		}
		sneakerID, ok := l.sneakers[csvSneakerID]
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(field(row, 2))
		if err != nil {
			l.warn("price_history", i+1, err)
			continue
		}
		at, err := time.ParseInLocation(TimestampLayout, field(row, 3), time.UTC)
		if err != nil {
			l.warn("price_history", i+1, err)
			continue
		}

		batch = append(batch, models.PriceHistory{SneakerID: sneakerID, Price: price, Timestamp: at})
		if len(batch) == priceBatchSize {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return loaded, nil
}
