package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	OwnerEmail   string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP is configured.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.OwnerEmail != ""
}

// DailyReportMail is the data rendered into the daily report email.
type DailyReportMail struct {
	StallName   string
	Date        string
	OrderCount  int
	CashTotal   int64
	OnlineTotal int64
	GrandTotal  int64
	Lines       []DailyReportLine
}

// DailyReportLine is a single transaction row in the email body.
type DailyReportLine struct {
	Time    string
	Items   string
	Payment string
	Total   int64
}

// SendDailyReport mails the day's sales summary to the stall owner.
func (s *EmailService) SendDailyReport(report *DailyReportMail) error {
	if !s.Enabled() {
		return fmt.Errorf("email: SMTP is not configured")
	}

	htmlContent, err := s.renderDailyReport(report)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Daily Sales Report - %s", report.Date)
	message := s.buildHTMLEmail(s.config.OwnerEmail, subject, htmlContent)

	return s.sendEmail(s.config.OwnerEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message with headers
func (s *EmailService) buildHTMLEmail(to, subject, htmlContent string) []byte {
	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlContent)
	return msg.Bytes()
}

const dailyReportTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.StallName}} - Daily Sales Report</h2>
  <p>Date: <strong>{{.Date}}</strong></p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Orders</td><td><strong>{{.OrderCount}}</strong></td></tr>
    <tr><td>Cash Sales</td><td>Rs. {{.CashTotal}}</td></tr>
    <tr><td>Online Sales</td><td>Rs. {{.OnlineTotal}}</td></tr>
    <tr><td>Grand Total</td><td><strong>Rs. {{.GrandTotal}}</strong></td></tr>
  </table>
  <h3>Transactions</h3>
  <table cellpadding="6" border="1" style="border-collapse: collapse;">
    <tr><th>Time</th><th>Items</th><th>Payment</th><th>Total</th></tr>
    {{range .Lines}}
    <tr><td>{{.Time}}</td><td>{{.Items}}</td><td>{{.Payment}}</td><td>Rs. {{.Total}}</td></tr>
    {{end}}
  </table>
</body>
</html>
`

// renderDailyReport renders the daily report HTML body
func (s *EmailService) renderDailyReport(report *DailyReportMail) (string, error) {
	tmpl, err := template.New("daily_report").Parse(dailyReportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
