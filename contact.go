package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required,max=5000"`
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type mailer struct {
	cfg  config.SMTPConfig
	send sendFunc
}

func newMailer(cfg config.SMTPConfig) *mailer {
	return &mailer{cfg: cfg, send: smtp.SendMail}
}

// headerSafe keeps user input from adding mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}

func (m *mailer) sendContactEmail(form contactForm) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	toEmail := m.cfg.To
	if toEmail == "" {
		toEmail = m.cfg.User
	}

	name := headerSafe(form.FullName)
	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, form.Email, form.Message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(form.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", name, form.Email)
	return nil
}

func (s *server) setupContactRoutes(r *gin.Engine) {
	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.POST("/contact", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please enter your name, a valid email address and a message.",
			})
			return
		}

		if err := s.mailer.sendContactEmail(form); err != nil {
			log.Printf("Error sending email: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}
