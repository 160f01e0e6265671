package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// QuotationEmailData feeds the quotation email template.
type QuotationEmailData struct {
	QuotationCode string
	CustomerName  string
	HallName      string
	EventDate     string
	TimeSlot      string
	TotalAmount   string
	ValidUntil    string
}

const quotationEmailTemplate = `<html><body>
<p>Dear {{.CustomerName}},</p>
<p>Please find your quotation <strong>{{.QuotationCode}}</strong> below:</p>
<ul>
<li>Hall: {{.HallName}}</li>
<li>Event date: {{.EventDate}} ({{.TimeSlot}})</li>
<li>Total: {{.TotalAmount}}</li>
</ul>
<p>This quotation is valid until {{.ValidUntil}}.</p>
</body></html>`

// SendQuotationEmail delivers a quotation summary to the customer.
// Runs async so the request is not held on the SMTP dial.
func SendQuotationEmail(to string, data QuotationEmailData) {
	go func() {
		tmpl, err := template.New("quotation").Parse(quotationEmailTemplate)
		if err != nil {
			log.Printf("quotation email: template error: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("quotation email: render error: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Quotation "+data.QuotationCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("quotation email: send error: %v", err)
		}
	}()
}
