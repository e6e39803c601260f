package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendDonationReceiptEmail sends a receipt once a donation has completed
func (s *EmailService) SendDonationReceiptEmail(toEmail string, fullName string, amount float64, currency string, transactionID string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #c59a6d;
        }
        .header h1 {
            color: #c59a6d;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .receipt {
            background-color: #f5f5f5;
            border: 2px solid #c59a6d;
            border-radius: 8px;
            padding: 20px;
            margin: 20px 0;
        }
        .receipt .amount {
            font-size: 28px;
            font-weight: bold;
            color: #c59a6d;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Thank You for Your Donation</h1>
    </div>

    <div class="content">
        <p>Dear %s,</p>

        <p>We have received your generous donation. Your support helps sustain our church's mission and ministries.</p>

        <div class="receipt">
            <div class="amount">%s %.2f</div>
            <p>Transaction reference: <strong>%s</strong></p>
        </div>

        <p>May God bless you abundantly for your generosity.</p>

        <p>Blessings,<br>The Church Team</p>
    </div>

    <div class="footer">
        <p>This receipt was generated automatically. Please keep it for your records.</p>
    </div>
</body>
</html>
`, fullName, currency, amount, transactionID)

	textBody := fmt.Sprintf(`
Thank You for Your Donation

Dear %s,

We have received your generous donation of %s %.2f.

Transaction reference: %s

Your support helps sustain our church's mission and ministries. May God bless you abundantly for your generosity.

Blessings,
The Church Team
`, fullName, currency, amount, transactionID)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "Your Donation Receipt",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send donation receipt to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent donation receipt to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendSubscriberWelcomeEmail sends a welcome email to new newsletter subscribers
func (s *EmailService) SendSubscriberWelcomeEmail(toEmail string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := `
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #c59a6d;
        }
        .header h1 {
            color: #c59a6d;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Welcome to Our Community</h1>
    </div>

    <div class="content">
        <p>Thank you for subscribing to our newsletter!</p>

        <p>You will now receive updates about:</p>
        <ul>
            <li>Upcoming services and events</li>
            <li>New sermons and teachings</li>
            <li>Ministry programs and opportunities to serve</li>
            <li>Stories from our church family</li>
        </ul>

        <p>We look forward to walking this journey of faith with you.</p>

        <p>Blessings,<br>The Church Team</p>
    </div>

    <div class="footer">
        <p>You can unsubscribe at any time by replying to this email.</p>
    </div>
</body>
</html>
`

	textBody := `
Welcome to Our Community

Thank you for subscribing to our newsletter!

You will now receive updates about upcoming services and events, new sermons, ministry programs, and stories from our church family.

We look forward to walking this journey of faith with you.

Blessings,
The Church Team
`

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "Welcome to our church newsletter!",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send welcome email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent subscriber welcome email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendSignupConfirmationEmail confirms a ministry signup was received
func (s *EmailService) SendSignupConfirmationEmail(toEmail string, fullName string, ministryName string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
            border-bottom: 2px solid #c59a6d;
        }
        .header h1 {
            color: #c59a6d;
            margin: 0;
        }
        .content {
            padding: 30px 0;
        }
        .footer {
            text-align: center;
            padding: 20px 0;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Signup Received</h1>
    </div>

    <div class="content">
        <p>Hi %s,</p>

        <p>Thank you for signing up to join <strong>%s</strong>!</p>

        <p>Our ministry coordinators have received your details and will be in touch soon with next steps.</p>

        <p>Blessings,<br>The Church Team</p>
    </div>

    <div class="footer">
        <p>If you did not submit this signup, please ignore this email.</p>
    </div>
</body>
</html>
`, fullName, ministryName)

	textBody := fmt.Sprintf(`
Signup Received

Hi %s,

Thank you for signing up to join %s!

Our ministry coordinators have received your details and will be in touch soon with next steps.

Blessings,
The Church Team
`, fullName, ministryName)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Your %s signup was received", ministryName),
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send signup confirmation to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent signup confirmation to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}
