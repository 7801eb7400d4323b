package car

import (
	"fmt"

	"github.com/showroom-motors/site/db"
)

// Image is one gallery picture of a car. Key is the object-storage stem
// returned by b2util.UploadImage.
type Image struct {
	ID       int    `json:"id"`
	CarID    int    `json:"car_id"`
	Key      string `json:"key"`
	Position int    `json:"position"`
}

// GetImages returns a car's images in display order.
func GetImages(carID int) ([]Image, error) {
	rows, err := db.Query(`SELECT id, car_id, image_key, position FROM CarImage
		WHERE car_id = ? ORDER BY position, id`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.CarID, &img.Key, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// GetImage returns one image by ID.
func GetImage(id int) (Image, bool) {
	var img Image
	err := db.QueryRow(`SELECT id, car_id, image_key, position FROM CarImage WHERE id = ?`, id).
		Scan(&img.ID, &img.CarID, &img.Key, &img.Position)
	if err != nil {
		return Image{}, false
	}
	return img, true
}

// AddImage appends key to the end of the car's gallery.
func AddImage(carID int, key string) (int, error) {
	res, err := db.Exec(`INSERT INTO CarImage (car_id, image_key, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM CarImage WHERE car_id = ?))`,
		carID, key, carID)
	if err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// DeleteImage removes the image row. The stored object is deleted by the caller.
func DeleteImage(id int) error {
	_, err := db.Exec("DELETE FROM CarImage WHERE id = ?", id)
	return err
}

// ReorderImages sets positions to follow the order of imageIDs. IDs that do
// not belong to carID are ignored.
func ReorderImages(carID int, imageIDs []int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for pos, id := range imageIDs {
		if _, err := tx.Exec("UPDATE CarImage SET position = ? WHERE id = ? AND car_id = ?", pos, id, carID); err != nil {
			return fmt.Errorf("reorder image %d: %w", id, err)
		}
	}
	return tx.Commit()
}
