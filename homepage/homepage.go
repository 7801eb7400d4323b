// Package homepage stores the carousel slides and partner logos shown on
// the landing page.
package homepage

import (
	"fmt"

	"github.com/showroom-motors/site/db"
)

// Table name constants
const (
	TableSlide = "CarouselSlide"
	TableLogo  = "Logo"
)

type Slide struct {
	ID         int    `json:"id"`
	TitleEN    string `json:"title_en"`
	TitleAR    string `json:"title_ar"`
	SubtitleEN string `json:"subtitle_en"`
	SubtitleAR string `json:"subtitle_ar"`
	ImageKey   string `json:"image_key"`
	LinkURL    string `json:"link_url"`
	Position   int    `json:"position"`
	Active     bool   `json:"active"`
}

type Logo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageKey string `json:"image_key"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
}

const selectSlide = `SELECT id, title_en, title_ar, subtitle_en, subtitle_ar, image_key, link_url, position, active FROM CarouselSlide`

// GetSlides returns the carousel in display order. Inactive slides are
// skipped unless includeInactive is set.
func GetSlides(includeInactive bool) ([]Slide, error) {
	q := selectSlide
	if !includeInactive {
		q += " WHERE active = 1"
	}
	rows, err := db.Query(q + " ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []Slide
	for rows.Next() {
		var s Slide
		var active int
		if err := rows.Scan(&s.ID, &s.TitleEN, &s.TitleAR, &s.SubtitleEN, &s.SubtitleAR,
			&s.ImageKey, &s.LinkURL, &s.Position, &active); err != nil {
			return nil, err
		}
		s.Active = active == 1
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

func GetSlide(id int) (Slide, bool) {
	var s Slide
	var active int
	err := db.QueryRow(selectSlide+" WHERE id = ?", id).Scan(&s.ID, &s.TitleEN, &s.TitleAR,
		&s.SubtitleEN, &s.SubtitleAR, &s.ImageKey, &s.LinkURL, &s.Position, &active)
	if err != nil {
		return Slide{}, false
	}
	s.Active = active == 1
	return s, true
}

// CreateSlide appends s to the end of the carousel.
func CreateSlide(s Slide) (int, error) {
	if s.ImageKey == "" {
		return 0, fmt.Errorf("slide image is required")
	}
	res, err := db.Exec(`INSERT INTO CarouselSlide (title_en, title_ar, subtitle_en, subtitle_ar, image_key, link_url, position, active)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM CarouselSlide), ?)`,
		s.TitleEN, s.TitleAR, s.SubtitleEN, s.SubtitleAR, s.ImageKey, s.LinkURL, boolToInt(s.Active))
	if err != nil {
		return 0, fmt.Errorf("insert slide: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

func UpdateSlide(s Slide) error {
	_, err := db.Exec(`UPDATE CarouselSlide SET title_en = ?, title_ar = ?, subtitle_en = ?, subtitle_ar = ?,
		image_key = ?, link_url = ?, active = ? WHERE id = ?`,
		s.TitleEN, s.TitleAR, s.SubtitleEN, s.SubtitleAR, s.ImageKey, s.LinkURL, boolToInt(s.Active), s.ID)
	return err
}

func DeleteSlide(id int) error {
	_, err := db.Exec("DELETE FROM CarouselSlide WHERE id = ?", id)
	return err
}

// GetLogos returns the partner logos in display order.
func GetLogos() ([]Logo, error) {
	rows, err := db.Query("SELECT id, name, image_key, link_url, position FROM Logo ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logos []Logo
	for rows.Next() {
		var l Logo
		if err := rows.Scan(&l.ID, &l.Name, &l.ImageKey, &l.LinkURL, &l.Position); err != nil {
			return nil, err
		}
		logos = append(logos, l)
	}
	return logos, rows.Err()
}

func GetLogo(id int) (Logo, bool) {
	var l Logo
	err := db.QueryRow("SELECT id, name, image_key, link_url, position FROM Logo WHERE id = ?", id).
		Scan(&l.ID, &l.Name, &l.ImageKey, &l.LinkURL, &l.Position)
	if err != nil {
		return Logo{}, false
	}
	return l, true
}

func CreateLogo(l Logo) (int, error) {
	if l.Name == "" || l.ImageKey == "" {
		return 0, fmt.Errorf("logo name and image are required")
	}
	res, err := db.Exec(`INSERT INTO Logo (name, image_key, link_url, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM Logo))`,
		l.Name, l.ImageKey, l.LinkURL)
	if err != nil {
		return 0, fmt.Errorf("insert logo: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

func UpdateLogo(l Logo) error {
	_, err := db.Exec("UPDATE Logo SET name = ?, image_key = ?, link_url = ? WHERE id = ?",
		l.Name, l.ImageKey, l.LinkURL, l.ID)
	return err
}

func DeleteLogo(id int) error {
	_, err := db.Exec("DELETE FROM Logo WHERE id = ?", id)
	return err
}

// Move swaps the row with its neighbour in table. delta is -1 for up and
// +1 for down; moving past either end is a no-op.
func Move(table string, id, delta int) error {
	if table != TableSlide && table != TableLogo {
		return fmt.Errorf("unknown table %q", table)
	}
	if delta != -1 && delta != 1 {
		return fmt.Errorf("delta must be -1 or 1")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pos int
	if err := tx.QueryRow("SELECT position FROM "+table+" WHERE id = ?", id).Scan(&pos); err != nil {
		return err
	}

	neighbour := "SELECT id, position FROM " + table + " WHERE position > ? ORDER BY position LIMIT 1"
	if delta < 0 {
		neighbour = "SELECT id, position FROM " + table + " WHERE position < ? ORDER BY position DESC LIMIT 1"
	}
	var otherID, otherPos int
	if err := tx.QueryRow(neighbour, pos).Scan(&otherID, &otherPos); err != nil {
		// already first or last
		return nil
	}

	if _, err := tx.Exec("UPDATE "+table+" SET position = ? WHERE id = ?", otherPos, id); err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE "+table+" SET position = ? WHERE id = ?", pos, otherID); err != nil {
		return err
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
