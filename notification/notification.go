package notification

import (
	"errors"
	"fmt"
	"log"

	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/email"
	"github.com/showroom-motors/site/inquiry"
	"github.com/showroom-motors/site/sms"
)

// Mailer sends one HTML email.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

// NotificationService alerts the dealer about new inquiries by SMS, email or
// both, depending on which channels are configured.
type NotificationService struct {
	smsService   sms.Sender
	emailService Mailer
	dealerPhone  string
	dealerEmail  string
}

// NewNotificationService builds the service from config. A channel whose
// provider or dealer address is missing is left out.
func NewNotificationService() (*NotificationService, error) {
	n := &NotificationService{dealerPhone: config.DealerPhone, dealerEmail: config.DealerEmail}

	if n.dealerPhone != "" {
		if svc, err := sms.NewSMSService(); err != nil {
			// Log error but don't fail - email notifications can still work
			log.Printf("Warning: SMS service not available: %v", err)
		} else {
			n.smsService = svc
		}
	}
	if n.dealerEmail != "" {
		if svc, err := email.NewEmailService(); err != nil {
			log.Printf("Warning: Email service not available: %v", err)
		} else {
			n.emailService = svc
		}
	}

	// At least one service should be available
	if n.smsService == nil && n.emailService == nil {
		return nil, fmt.Errorf("no notification services available - check configuration")
	}
	return n, nil
}

// New returns a service using the given channels. Either may be nil.
func New(s sms.Sender, m Mailer, dealerPhone, dealerEmail string) *NotificationService {
	return &NotificationService{smsService: s, emailService: m, dealerPhone: dealerPhone, dealerEmail: dealerEmail}
}

// NotifyInquiry sends q on every configured channel. A failing channel does
// not stop the others; all failures are returned together.
func (n *NotificationService) NotifyInquiry(q inquiry.Inquiry) error {
	var errs []error
	if n.smsService != nil && n.dealerPhone != "" {
		if err := n.smsService.Send(n.dealerPhone, inquiry.AlertText(q)); err != nil {
			log.Printf("SMS notification failed for inquiry %d: %v", q.ID, err)
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	if n.emailService != nil && n.dealerEmail != "" {
		subject, body := email.InquiryAlert(q.CarName, q.Name, q.Phone, q.Message)
		if err := n.emailService.SendEmail(n.dealerEmail, subject, body); err != nil {
			log.Printf("Email notification failed for inquiry %d: %v", q.ID, err)
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	return errors.Join(errs...)
}
