package car

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/showroom-motors/site/catalog"
	"github.com/showroom-motors/site/db"
	"github.com/showroom-motors/site/slug"
)

// Fuel type tags
const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"
)

// Transmission values
const (
	TransmissionAuto   = "auto"
	TransmissionManual = "manual"
)

var (
	FuelTypes     = []string{FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric}
	Transmissions = []string{TransmissionAuto, TransmissionManual}
	SeatOptions   = []int{2, 4, 5, 7, 8}
)

// Car is a model offered by the showroom.
type Car struct {
	// Core database fields
	ID            int       `json:"id"`
	BrandID       int       `json:"brand_id"`
	Model         string    `json:"model"`
	NameEN        string    `json:"name_en"`
	NameAR        string    `json:"name_ar"`
	Slug          string    `json:"slug"`
	Year          int       `json:"year"`
	Price         float64   `json:"price"`
	Transmission  string    `json:"transmission"`
	Seats         int       `json:"seats"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	Featured      bool      `json:"featured"`
	HasVector     bool      `json:"has_vector"`
	CreatedAt     time.Time `json:"created_at"`

	// Joined / derived
	BrandName string   `json:"brand"`
	FuelTypes []string `json:"fuel_types"`
	ImageKey  string   `json:"image_key,omitempty"`
}

// ToCatalog converts c to the record the public listing filters on. imageURL
// turns a stored image key into a thumbnail URL and may be nil.
func (c Car) ToCatalog(imageURL func(key string) string) catalog.Car {
	fuels := c.FuelTypes
	if fuels == nil {
		fuels = []string{}
	}
	out := catalog.Car{
		ID:           c.ID,
		Brand:        c.BrandName,
		Model:        c.Model,
		NameEN:       c.NameEN,
		NameAR:       c.NameAR,
		Slug:         c.Slug,
		Year:         c.Year,
		Price:        c.Price,
		FuelTypes:    fuels,
		Transmission: c.Transmission,
		Seats:        c.Seats,
	}
	if c.ImageKey != "" && imageURL != nil {
		out.Image = imageURL(c.ImageKey)
	}
	return out
}

// ToCatalog converts a slice of cars, keeping order.
func ToCatalog(cars []Car, imageURL func(key string) string) []catalog.Car {
	out := make([]catalog.Car, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ToCatalog(imageURL))
	}
	return out
}

const selectCar = `SELECT c.id, c.brand_id, b.name_en, c.model, c.name_en, c.name_ar, c.slug,
	c.year, c.price, c.transmission, c.seats, c.description_en, c.description_ar,
	c.featured, c.has_vector, c.created_at,
	COALESCE((SELECT i.image_key FROM CarImage i WHERE i.car_id = c.id ORDER BY i.position, i.id LIMIT 1), '')
	FROM Car c
	JOIN Brand b ON c.brand_id = b.id`

// query runs a car SELECT and attaches fuel types in a second query.
func query(where string, args ...interface{}) ([]Car, error) {
	rows, err := db.Query(selectCar+" "+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []Car
	for rows.Next() {
		var c Car
		var featured, hasVector int
		if err := rows.Scan(&c.ID, &c.BrandID, &c.BrandName, &c.Model, &c.NameEN, &c.NameAR, &c.Slug,
			&c.Year, &c.Price, &c.Transmission, &c.Seats, &c.DescriptionEN, &c.DescriptionAR,
			&featured, &hasVector, &c.CreatedAt, &c.ImageKey); err != nil {
			return nil, err
		}
		c.Featured = featured == 1
		c.HasVector = hasVector == 1
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachFuelTypes(cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func attachFuelTypes(cars []Car) error {
	if len(cars) == 0 {
		return nil
	}
	ids := make([]interface{}, len(cars))
	index := make(map[int]int, len(cars))
	for i, c := range cars {
		ids[i] = c.ID
		index[c.ID] = i
		cars[i].FuelTypes = []string{}
	}

	rows, err := db.Query("SELECT car_id, fuel_type FROM CarFuel WHERE car_id IN ("+
		db.Placeholders(len(ids))+") ORDER BY car_id, fuel_type", ids...)
	if err != nil {
		return fmt.Errorf("load fuel types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var carID int
		var fuel string
		if err := rows.Scan(&carID, &fuel); err != nil {
			return err
		}
		if i, ok := index[carID]; ok {
			cars[i].FuelTypes = append(cars[i].FuelTypes, fuel)
		}
	}
	return rows.Err()
}

// GetAll returns every car, newest first.
func GetAll() ([]Car, error) {
	return query("ORDER BY c.created_at DESC, c.id DESC")
}

// GetByBrand returns the cars of one brand.
func GetByBrand(brandID int) ([]Car, error) {
	return query("WHERE c.brand_id = ? ORDER BY c.year DESC, c.id DESC", brandID)
}

// GetFeatured returns up to n featured cars for the homepage.
func GetFeatured(n int) ([]Car, error) {
	return query("WHERE c.featured = 1 ORDER BY c.created_at DESC, c.id DESC LIMIT ?", n)
}

// GetByIDs returns cars in the order of ids; unknown IDs are skipped.
func GetByIDs(ids []int) ([]Car, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	cars, err := query("WHERE c.id IN ("+db.Placeholders(len(ids))+")", args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Car, len(cars))
	for _, c := range cars {
		byID[c.ID] = c
	}
	result := make([]Car, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetWithoutVector returns cars whose embedding has not been stored yet.
func GetWithoutVector() ([]Car, error) {
	return query("WHERE c.has_vector = 0 ORDER BY c.id")
}

// Get returns one car by ID.
func Get(id int) (Car, bool) {
	cars, err := query("WHERE c.id = ?", id)
	if err != nil {
		log.Printf("[car] Get %d: %v", id, err)
		return Car{}, false
	}
	if len(cars) == 0 {
		return Car{}, false
	}
	return cars[0], true
}

// GetBySlug returns one car by its URL slug.
func GetBySlug(s string) (Car, bool) {
	cars, err := query("WHERE c.slug = ?", s)
	if err != nil || len(cars) == 0 {
		return Car{}, false
	}
	return cars[0], true
}

// Validate checks the fields an admin must supply.
func (c Car) Validate() error {
	var missing []string
	if c.BrandID <= 0 {
		missing = append(missing, "brand")
	}
	if strings.TrimSpace(c.Model) == "" {
		missing = append(missing, "model")
	}
	if strings.TrimSpace(c.NameEN) == "" {
		missing = append(missing, "English name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	if c.Year < 1900 || c.Year > time.Now().Year()+2 {
		return fmt.Errorf("year %d is out of range", c.Year)
	}
	if c.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if c.Seats < 0 {
		return fmt.Errorf("seats cannot be negative")
	}
	return nil
}

// Create inserts c with its fuel types and returns the new ID.
func Create(c Car) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.NameEN + " " + fmt.Sprint(c.Year))
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO Car (brand_id, model, name_en, name_ar, slug, year, price,
		transmission, seats, description_en, description_ar, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.BrandID, c.Model, c.NameEN, c.NameAR, c.Slug, c.Year, c.Price,
		c.Transmission, c.Seats, c.DescriptionEN, c.DescriptionAR, boolToInt(c.Featured))
	if err != nil {
		return 0, fmt.Errorf("insert car: %w", err)
	}
	id, _ := res.LastInsertId()

	if err := insertFuelTypes(tx, int(id), c.FuelTypes); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(id), nil
}

// Update saves c and replaces its fuel types. The stored embedding is
// marked stale so it is rebuilt.
func Update(c Car) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.NameEN + " " + fmt.Sprint(c.Year))
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE Car SET brand_id = ?, model = ?, name_en = ?, name_ar = ?, slug = ?,
		year = ?, price = ?, transmission = ?, seats = ?, description_en = ?, description_ar = ?,
		featured = ?, has_vector = 0 WHERE id = ?`,
		c.BrandID, c.Model, c.NameEN, c.NameAR, c.Slug, c.Year, c.Price, c.Transmission, c.Seats,
		c.DescriptionEN, c.DescriptionAR, boolToInt(c.Featured), c.ID)
	if err != nil {
		return fmt.Errorf("update car %d: %w", c.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM CarFuel WHERE car_id = ?", c.ID); err != nil {
		return err
	}
	if err := insertFuelTypes(tx, c.ID, c.FuelTypes); err != nil {
		return err
	}
	return tx.Commit()
}

func insertFuelTypes(tx *sql.Tx, carID int, fuels []string) error {
	for _, f := range fuels {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if _, err := tx.Exec("INSERT OR IGNORE INTO CarFuel (car_id, fuel_type) VALUES (?, ?)", carID, f); err != nil {
			return fmt.Errorf("insert fuel type: %w", err)
		}
	}
	return nil
}

// Delete removes a car. Variations, images and fuel rows cascade.
func Delete(id int) error {
	_, err := db.Exec("DELETE FROM Car WHERE id = ?", id)
	return err
}

// MarkAsHavingVector records that the car's embedding is stored.
func MarkAsHavingVector(id int) error {
	_, err := db.Exec("UPDATE Car SET has_vector = 1 WHERE id = ?", id)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
