// Package catalog filters, sorts and pages the public car listing over a
// collection fetched in one piece.
package catalog

// Car is a read-only listing record as served by the catalog endpoint.
type Car struct {
	ID           int      `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	NameEN       string   `json:"name_en,omitempty"`
	NameAR       string   `json:"name_ar,omitempty"`
	Slug         string   `json:"slug,omitempty"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	FuelTypes    []string `json:"fuel_types,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Seats        int      `json:"seats,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// StatusSuccess is the only envelope status treated as a successful read.
const StatusSuccess = "success"

// Envelope is the JSON wrapper returned by the catalog endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Data    []Car  `json:"data"`
	Message string `json:"message,omitempty"`
}
