package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/inquiry"
	"github.com/showroom-motors/site/metrics"
	"github.com/showroom-motors/site/ui"
)

// Notifier alerts the dealer about a stored inquiry.
type Notifier interface {
	NotifyInquiry(q inquiry.Inquiry) error
}

var notifier Notifier

// SetNotifier sets the dealer alert service. nil disables alerts.
func SetNotifier(n Notifier) {
	notifier = n
}

func HandleInquiry(c *fiber.Ctx) error {
	v := viewer(c)

	carID, err := ParseFormInt(c, "car_id")
	if err != nil {
		metrics.Inquiry("invalid")
		return err
	}
	q := inquiry.Inquiry{
		Name:    c.FormValue("name"),
		Phone:   c.FormValue("phone"),
		Message: c.FormValue("message"),
	}
	if carID > 0 {
		found, ok := car.Get(carID)
		if !ok {
			metrics.Inquiry("invalid")
			return fiber.NewError(fiber.StatusNotFound, "Car not found")
		}
		q.CarID = &found.ID
		q.CarName = found.NameEN
	}

	if err := q.Validate(); err != nil {
		log.Printf("[inquiry] Rejected: %v", err)
		metrics.Inquiry("invalid")
		return ValidationErrorResponse(c, v.T("inquiry.invalid"))
	}

	id, err := inquiry.Create(q)
	if err != nil {
		log.Printf("[inquiry] Error storing inquiry: %v", err)
		metrics.Inquiry("error")
		return ValidationErrorResponse(c, v.T("inquiry.failed"))
	}
	q.ID = id
	metrics.Inquiry("stored")

	if notifier != nil {
		if err := notifier.NotifyInquiry(q); err != nil {
			log.Printf("[inquiry] Dealer alert for inquiry %d failed: %v", id, err)
		}
	}
	return render(c, ui.InquiryThanks(v))
}
