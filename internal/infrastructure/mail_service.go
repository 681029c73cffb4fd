package infrastructure

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailService sends transactional mail. Without an API key it logs and
// drops the message instead of failing account creation.
type MailService struct {
	apiKey string
	sender string
}

func NewMailService(apiKey, sender string) *MailService {
	return &MailService{
		apiKey: apiKey,
		sender: sender,
	}
}

func (m *MailService) SendWelcome(recipientEmail, recipientName string) error {
	if m.apiKey == "" {
		log.Printf("mail disabled, skipping welcome for %s", recipientEmail)
		return nil
	}

	from := mail.NewEmail("Realty", m.sender)
	subject := "Your account is ready"
	to := mail.NewEmail(recipientName, recipientEmail)

	plainTextContent := fmt.Sprintf("Hi %s, an account was created for you.", recipientName)
	htmlContent := fmt.Sprintf("<p>Hi %s, an account was created for you.</p>", recipientName)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("failed to send welcome email:", err)
		return err
	}

	log.Println("welcome email sent, status code:", response.StatusCode)
	return nil
}
