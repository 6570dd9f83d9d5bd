package utils

import (
	"fmt"
	"log"

	"github.com/AdamLouly/quizzapp/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional email through SendGrid
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	from := mail.NewEmail("QuizzApp", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
	}
	return nil
}

// SendVerificationEmail emails the account activation link after registration
func SendVerificationEmail(toName, toEmail, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", config.AppConfig.ClientURL, token)
	body := emailTemplate("Verify your email", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your QuizzApp account has been created. Please confirm your email address to activate it.</p>
		<a class="btn" href="%s">Verify Email</a>`, toName, link))
	return SendEmail(toName, toEmail, "Verify your QuizzApp account", body)
}

// SendPasswordResetEmail emails the reset link for a forgot-password request
func SendPasswordResetEmail(toName, toEmail, token string, userID uint) error {
	link := fmt.Sprintf("%s/reset-password?token=%s&id=%d", config.AppConfig.ClientURL, token, userID)
	body := emailTemplate("Password Reset Request", fmt.Sprintf(`
		<h2>Hello, %s</h2>
		<p>We received a request to reset your password. The link below is valid for 24 hours.</p>
		<a class="btn" href="%s">Reset Password</a>
		<p>If you did not request this, you can safely ignore this email.</p>`, toName, link))
	return SendEmail(toName, toEmail, "Password Reset Request", body)
}

// emailTemplate wraps body content in the shared HTML layout
func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #457B9D; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">QuizzApp &middot; This is an automated message, please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
