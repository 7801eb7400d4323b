// Package inquiry stores visitor contact requests and alerts the dealer.
package inquiry

import (
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/showroom-motors/site/db"
)

const MaxMessageLength = 1000

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

type Inquiry struct {
	ID        int       `json:"id"`
	CarID     *int      `json:"car_id,omitempty"`
	CarName   string    `json:"car_name,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizePhone strips spaces, dashes and brackets.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

// Validate trims the fields in place and checks them.
func (q *Inquiry) Validate() error {
	q.Name = strings.TrimSpace(q.Name)
	q.Phone = NormalizePhone(q.Phone)
	q.Message = strings.TrimSpace(q.Message)

	if q.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !phonePattern.MatchString(q.Phone) {
		return fmt.Errorf("phone number is not valid")
	}
	if utf8.RuneCountInString(q.Message) > MaxMessageLength {
		return fmt.Errorf("message is longer than %d characters", MaxMessageLength)
	}
	return nil
}

// Create validates and stores q, returning its ID.
func Create(q Inquiry) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	res, err := db.Exec(`INSERT INTO Inquiry (car_id, name, phone, message) VALUES (?, ?, ?, ?)`,
		q.CarID, q.Name, q.Phone, q.Message)
	if err != nil {
		return 0, fmt.Errorf("insert inquiry: %w", err)
	}
	id, _ := res.LastInsertId()
	log.Printf("[inquiry] Stored inquiry %d", id)
	return int(id), nil
}

// GetAll returns inquiries newest first, joined with the car name.
func GetAll() ([]Inquiry, error) {
	rows, err := db.Query(`SELECT i.id, i.car_id, COALESCE(c.name_en, ''), i.name, i.phone, i.message, i.created_at
		FROM Inquiry i
		LEFT JOIN Car c ON i.car_id = c.id
		ORDER BY i.created_at DESC, i.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []Inquiry
	for rows.Next() {
		var q Inquiry
		var carID sql.NullInt64
		if err := rows.Scan(&q.ID, &carID, &q.CarName, &q.Name, &q.Phone, &q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		if carID.Valid {
			id := int(carID.Int64)
			q.CarID = &id
		}
		inquiries = append(inquiries, q)
	}
	return inquiries, rows.Err()
}

func Delete(id int) error {
	_, err := db.Exec("DELETE FROM Inquiry WHERE id = ?", id)
	return err
}

// AlertText is the SMS body sent to the dealer.
func AlertText(q Inquiry) string {
	var b strings.Builder
	b.WriteString("New inquiry")
	if q.CarName != "" {
		b.WriteString(" about ")
		b.WriteString(q.CarName)
	}
	fmt.Fprintf(&b, " from %s (%s)", q.Name, q.Phone)
	if q.Message != "" {
		msg := q.Message
		if utf8.RuneCountInString(msg) > 120 {
			msg = string([]rune(msg)[:120]) + "…"
		}
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}
