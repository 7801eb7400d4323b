package brand

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/showroom-motors/site/cache"
	"github.com/showroom-motors/site/db"
	"github.com/showroom-motors/site/slug"
)

// ErrInUse is returned by Delete when cars still reference the brand.
var ErrInUse = errors.New("brand still has cars")

type Brand struct {
	ID        int       `json:"id"`
	NameEN    string    `json:"name_en"`
	NameAR    string    `json:"name_ar"`
	Slug      string    `json:"slug"`
	LogoKey   string    `json:"logo_key"`
	CreatedAt time.Time `json:"created_at"`
}

var brandCache *cache.Cache[[]string]

// InitBrandCache sets up the cache that backs Names.
func InitBrandCache() error {
	var err error
	brandCache, err = cache.New[[]string](func(value []string) int64 {
		return int64(len(value) * 24)
	}, "Brand Names Cache")
	if err != nil {
		return err
	}
	log.Printf("[brand-cache] Cache initialized successfully")
	return nil
}

const selectBrand = `SELECT id, name_en, name_ar, slug, logo_key, created_at FROM Brand`

func scanBrand(row interface{ Scan(...any) error }) (Brand, error) {
	var b Brand
	err := row.Scan(&b.ID, &b.NameEN, &b.NameAR, &b.Slug, &b.LogoKey, &b.CreatedAt)
	return b, err
}

// GetAll returns every brand ordered by English name.
func GetAll() ([]Brand, error) {
	rows, err := db.Query(selectBrand + " ORDER BY name_en")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// Get returns the brand with id, or false when missing.
func Get(id int) (Brand, bool) {
	b, err := scanBrand(db.QueryRow(selectBrand+" WHERE id = ?", id))
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[brand] Get %d: %v", id, err)
		}
		return Brand{}, false
	}
	return b, true
}

// GetBySlug returns the brand whose slug is s.
func GetBySlug(s string) (Brand, bool) {
	b, err := scanBrand(db.QueryRow(selectBrand+" WHERE slug = ?", s))
	if err != nil {
		return Brand{}, false
	}
	return b, true
}

// Create inserts b and returns its new ID. The slug is derived from the
// English name when empty.
func Create(b Brand) (int, error) {
	if b.NameEN == "" {
		return 0, fmt.Errorf("brand name is required")
	}
	if b.Slug == "" {
		b.Slug = slug.Make(b.NameEN)
	}
	res, err := db.Exec(`INSERT INTO Brand (name_en, name_ar, slug, logo_key) VALUES (?, ?, ?, ?)`,
		b.NameEN, b.NameAR, b.Slug, b.LogoKey)
	if err != nil {
		return 0, fmt.Errorf("insert brand: %w", err)
	}
	id, _ := res.LastInsertId()
	ClearCache()
	return int(id), nil
}

// Update saves every editable field of b.
func Update(b Brand) error {
	if b.Slug == "" {
		b.Slug = slug.Make(b.NameEN)
	}
	_, err := db.Exec(`UPDATE Brand SET name_en = ?, name_ar = ?, slug = ?, logo_key = ? WHERE id = ?`,
		b.NameEN, b.NameAR, b.Slug, b.LogoKey, b.ID)
	if err != nil {
		return fmt.Errorf("update brand %d: %w", b.ID, err)
	}
	ClearCache()
	return nil
}

// Delete removes a brand that no car references.
func Delete(id int) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM Car WHERE brand_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}
	if _, err := db.Exec(`DELETE FROM Brand WHERE id = ?`, id); err != nil {
		return err
	}
	ClearCache()
	return nil
}

// Names returns the English brand names, served from cache after the first call.
func Names() []string {
	const cacheKey = "names:all"

	if brandCache != nil {
		if cached, found := brandCache.Get(cacheKey); found {
			return cached
		}
	}

	rows, err := db.Query(`SELECT name_en FROM Brand ORDER BY name_en`)
	if err != nil {
		log.Printf("[brand] Names: %v", err)
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil
		}
		names = append(names, name)
	}

	if brandCache != nil {
		brandCache.Set(cacheKey, names, int64(len(names)*24))
	}
	return names
}

// ClearCache drops cached brand lists after an edit.
func ClearCache() {
	if brandCache != nil {
		brandCache.Clear()
		log.Printf("[brand-cache] Cache cleared")
	}
}

// CacheStats returns the brand cache statistics.
func CacheStats() map[string]interface{} {
	if brandCache == nil {
		return map[string]interface{}{"cache_type": "Brand Names Cache"}
	}
	return brandCache.Stats()
}
