package services

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	gomail "gopkg.in/gomail.v2"
)

// EmailService is the outbound notification collaborator. Every send is a
// single best-effort attempt: failures are logged and reported as false,
// never as an error to the caller.
type EmailService interface {
	Send(to, subject, htmlBody string) bool
	SendOrderConfirmation(to string, orderID int64, totalAmount decimal.Decimal) bool
	SendCareerConfirmation(to, position string) bool
	SendAdminNotification(subject, htmlBody string) bool
}

type smtpEmailService struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
}

func NewSMTPEmailService(host string, port int, username, password, adminEmail string) EmailService {
	from := username
	if from == "" {
		from = "noreply@homekitchen.com"
	}
	return &smtpEmailService{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminEmail: adminEmail,
	}
}

func (s *smtpEmailService) Send(to, subject, htmlBody string) bool {
	if s.username == "" || s.password == "" {
		log.Println("Email credentials not configured. Skipping email send.")
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}

	log.Printf("Email sent successfully to %s", to)
	return true
}

func (s *smtpEmailService) SendOrderConfirmation(to string, orderID int64, totalAmount decimal.Decimal) bool {
	subject := "Order Confirmation - Home' Kitchen"
	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Order ID: %d</p>
		<p>Total Amount: $%s</p>
		<p>We'll start preparing your order right away. Estimated delivery time: 30-45 minutes.</p>
		<p>If you have any questions, please call us at +1 (555) 123-4567</p>
	`, orderID, totalAmount.StringFixed(2))
	return s.Send(to, subject, body)
}

func (s *smtpEmailService) SendCareerConfirmation(to, position string) bool {
	subject := "Application Received - Home' Kitchen"
	body := fmt.Sprintf(`
		<h2>Thank you for your application!</h2>
		<p>We have received your application for the position of <strong>%s</strong>.</p>
		<p>Our team will review your application and get back to you within 5-7 business days.</p>
		<p>If you have any questions, please email us at careers@homekitchen.com</p>
	`, position)
	return s.Send(to, subject, body)
}

func (s *smtpEmailService) SendAdminNotification(subject, htmlBody string) bool {
	if s.adminEmail == "" {
		return false
	}
	return s.Send(s.adminEmail, subject, htmlBody)
}
