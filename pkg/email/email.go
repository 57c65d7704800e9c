package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailService sends transactional notifications via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

type Config struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
}

// MentorshipEmailData holds the data for the mentor notification email.
type MentorshipEmailData struct {
	MentorName  string
	StudentName string
	Message     string
}

func NewEmailService(cfg Config) *EmailService {
	return &EmailService{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: cfg.FromEmail,
	}
}

const mentorshipEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Mentorship Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a7f5a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a7f5a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Mentorship Request</h1>
        </div>
        <div class="content">
            <p>Hi {{.MentorName}},</p>
            <p>{{.StudentName}} has asked to connect with you as a mentor.</p>
            <div class="field">
                <div class="label">Their message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            <p>Log in to Alumni Connect to accept or decline the request.</p>
        </div>
        <div class="footer">
            <p>You are receiving this because your profile is marked as available for mentoring.</p>
        </div>
    </div>
</body>
</html>`

// SendMentorshipRequest notifies a mentor that a student asked for mentorship.
func (s *EmailService) SendMentorshipRequest(to string, data MentorshipEmailData) error {
	tmpl, err := template.New("mentorship").Parse(mentorshipEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Mentorship request from %s", data.StudentName)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
