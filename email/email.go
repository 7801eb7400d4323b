package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/showroom-motors/site/config"
)

// EmailService handles sending emails via Twilio SendGrid
type EmailService struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// message is the SendGrid v3 mail/send request body
type message struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// NewEmailService creates a new email service instance
func NewEmailService() (*EmailService, error) {
	if config.SendGridAPIKey == "" || config.SendGridFromEmail == "" {
		return nil, fmt.Errorf("missing SendGrid configuration")
	}
	return &EmailService{
		apiKey:   config.SendGridAPIKey,
		from:     config.SendGridFromEmail,
		endpoint: config.SendGridEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendEmail sends one HTML email
func (s *EmailService) SendEmail(to, subject, htmlBody string) error {
	body, err := json.Marshal(message{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: s.from},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: htmlBody}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: %d", resp.StatusCode)
	}

	log.Printf("[EMAIL] Email sent successfully to %s", to)
	return nil
}

// InquiryAlert builds the subject and HTML body of the dealer email for a
// new inquiry. All fields are escaped.
func InquiryAlert(carName, name, phone, msg string) (subject, body string) {
	subject = "New inquiry from " + name
	if carName != "" {
		subject += " about " + carName
	}

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	b.WriteString(`<h2 style="margin: 0 0 16px;">New showroom inquiry</h2>`)
	if carName != "" {
		fmt.Fprintf(&b, "<p><strong>Car:</strong> %s</p>", html.EscapeString(carName))
	}
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(name))
	fmt.Fprintf(&b, `<p><strong>Phone:</strong> <a href="tel:%[1]s">%[1]s</a></p>`, html.EscapeString(phone))
	if msg != "" {
		fmt.Fprintf(&b, `<p style="background: #f1f3f4; padding: 12px; border-radius: 6px;">%s</p>`,
			strings.ReplaceAll(html.EscapeString(msg), "\n", "<br>"))
	}
	fmt.Fprintf(&b, `<p><a href="%s/admin/inquiries">Open the inquiries dashboard</a></p>`, config.BaseURL)
	b.WriteString(`</body></html>`)
	return subject, b.String()
}

// MockEmailService records emails instead of sending them
type MockEmailService struct {
	Sent []string
}

func (m *MockEmailService) SendEmail(to, subject, htmlBody string) error {
	m.Sent = append(m.Sent, to+": "+subject)
	log.Printf("[MOCK EMAIL] Email sent to %s: %s", to, subject)
	return nil
}
