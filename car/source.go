package car

import (
	"context"

	"github.com/showroom-motors/site/catalog"
)

// StoreSource serves the public catalog from this site's database.
type StoreSource struct {
	ImageURL func(key string) string
}

func (s StoreSource) FetchCars(ctx context.Context) ([]catalog.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cars, err := GetAll()
	if err != nil {
		return nil, err
	}
	return ToCatalog(cars, s.ImageURL), nil
}
