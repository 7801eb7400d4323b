package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/db"
	"github.com/showroom-motors/site/password"
	"github.com/showroom-motors/site/slug"
	"github.com/showroom-motors/site/user"
)

type seedCar struct {
	Model         string   `json:"model"`
	NameEN        string   `json:"name_en"`
	NameAR        string   `json:"name_ar"`
	Year          int      `json:"year"`
	Price         float64  `json:"price"`
	Transmission  string   `json:"transmission"`
	Seats         int      `json:"seats"`
	FuelTypes     []string `json:"fuel_types"`
	DescriptionEN string   `json:"description_en"`
	DescriptionAR string   `json:"description_ar"`
	Featured      bool     `json:"featured"`
}

type seedBrand struct {
	NameEN string    `json:"name_en"`
	NameAR string    `json:"name_ar"`
	Cars   []seedCar `json:"cars"`
}

type seedFile struct {
	Brands []seedBrand `json:"brands"`
}

func main() {
	dataFile := flag.String("data", "cmd/seed/showroom.json", "brands and cars to import")
	adminName := flag.String("admin", "admin", "name of the initial admin account")
	flag.Parse()

	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(*dataFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *dataFile, err)
	}
	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse %s: %v", *dataFile, err)
	}

	brands, cars := importBrands(data.Brands)
	log.Printf("Imported %d brands and %d cars", brands, cars)

	// SEED_ADMIN_PASSWORD keeps the password out of shell history
	if err := ensureAdmin(*adminName, os.Getenv("SEED_ADMIN_PASSWORD")); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
}

// importBrands inserts every brand and its cars. Brands that already exist
// are reused; failed rows are logged and skipped.
func importBrands(brands []seedBrand) (brandCount, carCount int) {
	for _, sb := range brands {
		brandID, created, err := getOrCreateBrand(sb)
		if err != nil {
			log.Printf("Failed to insert brand %s: %v", sb.NameEN, err)
			continue
		}
		if created {
			brandCount++
		}
		for _, sc := range sb.Cars {
			id, err := car.Create(sc.toCar(brandID))
			if err != nil {
				log.Printf("Failed to insert car %s: %v", sc.NameEN, err)
				continue
			}
			log.Printf("Inserted car %d: %s", id, sc.NameEN)
			carCount++
		}
	}
	return brandCount, carCount
}

func getOrCreateBrand(sb seedBrand) (id int, created bool, err error) {
	if b, ok := brand.GetBySlug(slug.Make(sb.NameEN)); ok {
		return b.ID, false, nil
	}
	id, err = brand.Create(brand.Brand{NameEN: sb.NameEN, NameAR: sb.NameAR})
	return id, err == nil, err
}

func (sc seedCar) toCar(brandID int) car.Car {
	return car.Car{
		BrandID:       brandID,
		Model:         sc.Model,
		NameEN:        sc.NameEN,
		NameAR:        sc.NameAR,
		Year:          sc.Year,
		Price:         sc.Price,
		Transmission:  sc.Transmission,
		Seats:         sc.Seats,
		FuelTypes:     sc.FuelTypes,
		DescriptionEN: sc.DescriptionEN,
		DescriptionAR: sc.DescriptionAR,
		Featured:      sc.Featured,
	}
}

// ensureAdmin creates the first admin unless the name is already taken.
func ensureAdmin(name, pass string) error {
	if _, err := user.GetUserByName(name); err == nil {
		log.Printf("Admin %s already exists", name)
		return nil
	}
	if err := password.ValidateAdminName(name); err != nil {
		return err
	}
	if err := password.ValidatePasswordStrength(pass); err != nil {
		return fmt.Errorf("SEED_ADMIN_PASSWORD: %w", err)
	}
	hash, salt, err := password.HashPassword(pass)
	if err != nil {
		return err
	}
	id, err := user.CreateUser(name, hash, salt, password.Algo)
	if err != nil {
		return err
	}
	log.Printf("Created admin %d: %s", id, name)
	return nil
}
