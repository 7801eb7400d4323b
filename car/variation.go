package car

import (
	"fmt"

	"github.com/showroom-motors/site/db"
)

// Variation is a trim level of a car with its own price and engine.
type Variation struct {
	ID         int     `json:"id"`
	CarID      int     `json:"car_id"`
	NameEN     string  `json:"name_en"`
	NameAR     string  `json:"name_ar"`
	Price      float64 `json:"price"`
	Engine     string  `json:"engine"`
	Horsepower int     `json:"horsepower"`
}

// GetVariations returns a car's variations, cheapest first.
func GetVariations(carID int) ([]Variation, error) {
	rows, err := db.Query(`SELECT id, car_id, name_en, name_ar, price, engine, horsepower
		FROM Variation WHERE car_id = ? ORDER BY price, id`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variations []Variation
	for rows.Next() {
		var v Variation
		if err := rows.Scan(&v.ID, &v.CarID, &v.NameEN, &v.NameAR, &v.Price, &v.Engine, &v.Horsepower); err != nil {
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

// GetVariation returns one variation by ID.
func GetVariation(id int) (Variation, bool) {
	var v Variation
	err := db.QueryRow(`SELECT id, car_id, name_en, name_ar, price, engine, horsepower
		FROM Variation WHERE id = ?`, id).
		Scan(&v.ID, &v.CarID, &v.NameEN, &v.NameAR, &v.Price, &v.Engine, &v.Horsepower)
	if err != nil {
		return Variation{}, false
	}
	return v, true
}

// CreateVariation inserts v and returns its ID.
func CreateVariation(v Variation) (int, error) {
	if v.NameEN == "" {
		return 0, fmt.Errorf("variation name is required")
	}
	res, err := db.Exec(`INSERT INTO Variation (car_id, name_en, name_ar, price, engine, horsepower)
		VALUES (?, ?, ?, ?, ?, ?)`, v.CarID, v.NameEN, v.NameAR, v.Price, v.Engine, v.Horsepower)
	if err != nil {
		return 0, fmt.Errorf("insert variation: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// UpdateVariation saves v.
func UpdateVariation(v Variation) error {
	_, err := db.Exec(`UPDATE Variation SET name_en = ?, name_ar = ?, price = ?, engine = ?, horsepower = ?
		WHERE id = ?`, v.NameEN, v.NameAR, v.Price, v.Engine, v.Horsepower, v.ID)
	return err
}

func DeleteVariation(id int) error {
	_, err := db.Exec("DELETE FROM Variation WHERE id = ?", id)
	return err
}
