package car

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/showroom-motors/site/catalog"
	"github.com/showroom-motors/site/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db.SetForTesting(mockDB)
	return mock
}

var carColumns = []string{"id", "brand_id", "brand", "model", "name_en", "name_ar", "slug",
	"year", "price", "transmission", "seats", "description_en", "description_ar",
	"featured", "has_vector", "created_at", "image_key"}

func carRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(carColumns).
		AddRow(1, 1, "Toyota", "Camry", "Toyota Camry", "تويوتا كامري", "toyota-camry-2020",
			2020, 100000.0, "auto", 5, "", "", 1, 0, now, "cars/abc").
		AddRow(2, 2, "Honda", "Accord", "Honda Accord", "هوندا أكورد", "honda-accord-2022",
			2022, 200000.0, "auto", 5, "", "", 0, 1, now, "")
}

func expectFuelQuery(mock sqlmock.Sqlmock, ids ...int) *sqlmock.ExpectedQuery {
	args := make([]driver.Value, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return mock.ExpectQuery(regexp.QuoteMeta("SELECT car_id, fuel_type FROM CarFuel WHERE car_id IN (" +
		db.Placeholders(len(ids)) + ")")).WithArgs(args...)
}

func TestGetAll(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.created_at DESC")).WillReturnRows(carRows())
	expectFuelQuery(mock, 1, 2).WillReturnRows(sqlmock.NewRows([]string{"car_id", "fuel_type"}).
		AddRow(1, "hybrid").
		AddRow(1, "petrol").
		AddRow(2, "petrol"))

	cars, err := GetAll()
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Toyota", cars[0].BrandName)
	assert.Equal(t, []string{"hybrid", "petrol"}, cars[0].FuelTypes)
	assert.True(t, cars[0].Featured)
	assert.False(t, cars[0].HasVector)
	assert.True(t, cars[1].HasVector)
	assert.Equal(t, "cars/abc", cars[0].ImageKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_NoFuelRows(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM Car c")).WillReturnRows(carRows())
	expectFuelQuery(mock, 1, 2).WillReturnRows(sqlmock.NewRows([]string{"car_id", "fuel_type"}))

	cars, err := GetAll()
	require.NoError(t, err)
	assert.Equal(t, []string{}, cars[1].FuelTypes)
}

func TestGet_NotFound(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = ?")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(carColumns))

	_, ok := Get(42)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDs_PreservesOrder(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id IN (?,?,?)")).
		WithArgs(2, 9, 1).
		WillReturnRows(carRows())
	expectFuelQuery(mock, 1, 2).WillReturnRows(sqlmock.NewRows([]string{"car_id", "fuel_type"}))

	cars, err := GetByIDs([]int{2, 9, 1})
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, 2, cars[0].ID)
	assert.Equal(t, 1, cars[1].ID)
}

func TestGetByIDs_Empty(t *testing.T) {
	cars, err := GetByIDs(nil)
	assert.NoError(t, err)
	assert.Nil(t, cars)
}

func TestCreate(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Car").
		WithArgs(1, "Corolla", "Toyota Corolla", "", "toyota-corolla-2024", 2024, 85000.0,
			"auto", 5, "", "", 0).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO CarFuel (car_id, fuel_type) VALUES (?, ?)")).
		WithArgs(11, "hybrid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := Create(Car{
		BrandID:      1,
		Model:        "Corolla",
		NameEN:       "Toyota Corolla",
		Year:         2024,
		Price:        85000,
		Transmission: "auto",
		Seats:        5,
		FuelTypes:    []string{" Hybrid ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RollsBackOnFuelError(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Car").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT OR IGNORE INTO CarFuel").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := Create(Car{BrandID: 1, Model: "X5", NameEN: "BMW X5", Year: 2023, FuelTypes: []string{"diesel"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Car SET brand_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM CarFuel WHERE car_id = ?")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT OR IGNORE INTO CarFuel").
		WithArgs(4, "electric").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Update(Car{ID: 4, BrandID: 2, Model: "Model 3", NameEN: "Tesla Model 3", Slug: "model-3",
		Year: 2024, Price: 180000, FuelTypes: []string{"electric"}})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidate(t *testing.T) {
	valid := Car{BrandID: 1, Model: "Camry", NameEN: "Toyota Camry", Year: 2020, Price: 1}
	tests := []struct {
		name    string
		mutate  func(*Car)
		wantErr string
	}{
		{"valid", func(c *Car) {}, ""},
		{"missing brand and model", func(c *Car) { c.BrandID = 0; c.Model = " " }, "missing brand, model"},
		{"old year", func(c *Car) { c.Year = 1850 }, "out of range"},
		{"negative price", func(c *Car) { c.Price = -1 }, "price"},
		{"negative seats", func(c *Car) { c.Seats = -2 }, "seats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestToCatalog(t *testing.T) {
	c := Car{ID: 1, BrandName: "Toyota", Model: "Camry", NameEN: "Toyota Camry", Slug: "camry",
		Year: 2020, Price: 100000, Transmission: "auto", Seats: 5, ImageKey: "cars/abc"}

	got := c.ToCatalog(func(key string) string { return "https://img/" + key + "-480w.webp" })
	assert.Equal(t, catalog.Car{ID: 1, Brand: "Toyota", Model: "Camry", NameEN: "Toyota Camry",
		Slug: "camry", Year: 2020, Price: 100000, FuelTypes: []string{}, Transmission: "auto",
		Seats: 5, Image: "https://img/cars/abc-480w.webp"}, got)

	assert.Equal(t, "", c.ToCatalog(nil).Image)
	assert.Len(t, ToCatalog([]Car{c, c}, nil), 2)
}

func TestStoreSource(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM Car c")).WillReturnRows(carRows())
	expectFuelQuery(mock, 1, 2).WillReturnRows(sqlmock.NewRows([]string{"car_id", "fuel_type"}).AddRow(2, "petrol"))

	cars, err := StoreSource{}.FetchCars(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Honda", cars[1].Brand)
	assert.Equal(t, []string{"petrol"}, cars[1].FuelTypes)

	// the filter pipeline runs directly on the converted records
	f := catalog.DefaultFilters(1e7)
	f.Brands = map[string][]string{"honda": nil}
	assert.Len(t, catalog.Filter(cars, f), 1)
}

func TestVariations(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM Variation WHERE car_id = ? ORDER BY price, id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "car_id", "name_en", "name_ar", "price", "engine", "horsepower"}).
			AddRow(1, 1, "LE", "إل إي", 95000.0, "2.5L", 203).
			AddRow(2, 1, "XSE", "إكس إس إي", 120000.0, "3.5L V6", 301))

	vs, err := GetVariations(1)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "XSE", vs[1].NameEN)
	assert.Equal(t, 301, vs[1].Horsepower)

	_, err = CreateVariation(Variation{CarID: 1})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImages(t *testing.T) {
	mock := setupMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO CarImage (car_id, image_key, position)")).
		WithArgs(3, "cars/xyz", 3).
		WillReturnResult(sqlmock.NewResult(8, 1))

	id, err := AddImage(3, "cars/xyz")
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE CarImage SET position = ? WHERE id = ? AND car_id = ?")).
		WithArgs(0, 8, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE CarImage SET position = ? WHERE id = ? AND car_id = ?")).
		WithArgs(1, 5, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, ReorderImages(3, []int{8, 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
