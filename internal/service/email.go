package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"

	"vehiclerental-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService sends booking notifications through SendGrid. An empty
// API key disables sending; every call becomes a logged no-op so local
// runs work without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingApprovalNotification(ctx context.Context, toEmail, toName, vehicleDesc, bookingID string, amount decimal.Decimal) error {
	subject := fmt.Sprintf("Booking %s approved", bookingID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking %s for %s has been approved.\nAmount charged: $%s.\n\nBest regards,\nThe Rental Team",
		toName, bookingID, vehicleDesc, amount.StringFixed(2))
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendBookingRejectionNotification(ctx context.Context, toEmail, toName, vehicleDesc, bookingID, reason string) error {
	subject := fmt.Sprintf("Booking %s rejected", bookingID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking %s for %s has been rejected.",
		toName, bookingID, vehicleDesc)
	if reason != "" {
		body += fmt.Sprintf("\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Rental Team"
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendOverdueReport(ctx context.Context, toEmail string, bookingIDs []string) error {
	subject := fmt.Sprintf("%d overdue rental(s)", len(bookingIDs))
	body := fmt.Sprintf(
		"The following approved bookings are past their return date:\n\n%s\n\nPlease follow up with the customers.",
		strings.Join(bookingIDs, "\n"))
	return s.send(toEmail, "", subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("email sending disabled, skipping", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	html := strings.ReplaceAll(plainText, "\n", "<br>")
	message := mail.NewSingleEmail(from, subject, recipient, plainText, html)

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
