package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, orderID int64, total decimal.Decimal) error
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) SendOrderConfirmation(ctx context.Context, toEmail string, orderID int64, total decimal.Decimal) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail("", toEmail)

	subject := fmt.Sprintf("Order #%d confirmed", orderID)
	content := fmt.Sprintf("Thank you for your order!\n\nOrder number: %d\nTotal: %s\n", orderID, total.StringFixed(2))

	message := mail.NewSingleEmail(from, subject, to, content, "")

	response, err := e.client.SendWithContext(ctx, message)

	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
