package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
)

// Placeholders for optional fields the submitter left blank.
const (
	NotSpecified = "Not specified"
	NotAvailable = "N/A"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Studio      string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Timeline    string
	Message     string // block omitted when empty
}

// PricingEmailData holds the data for quote request emails
type PricingEmailData struct {
	Studio         string
	Name           string
	Email          string
	Phone          string
	ProjectType    string
	SquareFeet     string
	Tier           string
	EstimatedQuote string
	Message        string // block omitted when empty
}

// ServiceEmailData holds the data for service request emails
type ServiceEmailData struct {
	Studio         string
	Name           string
	Email          string
	Phone          string
	ServiceType    string
	Timeline       string
	Budget         string
	ProjectDetails string
}

const htmlLayoutOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`

const htmlPanel = `<div style="background-color: #ffffff; padding: 20px; border-radius: 8px; border-left: 4px solid #22333B; margin: 20px 0;">`

const contactHTML = htmlLayoutOpen + `
  <h2 style="color: #22333B;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
    <p><strong>Timeline:</strong> {{.Timeline}}</p>
  </div>
{{- if .Message}}
  ` + htmlPanel + `
    <h3 style="color: #22333B; margin-top: 0;">Message:</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
{{- end}}
  <p style="color: #666; font-size: 12px; margin-top: 20px;">This email was sent from the {{.Studio}} contact form.</p>
</div>
`

const contactText = `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Project Type: {{.ProjectType}}
Timeline: {{.Timeline}}
{{- if .Message}}

Message:
{{.Message}}
{{- end}}

---
This email was sent from the {{.Studio}} contact form.
`

const pricingHTML = htmlLayoutOpen + `
  <h2 style="color: #22333B;">New Quote Request</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
  </div>
  ` + htmlPanel + `
    <h3 style="color: #22333B; margin-top: 0;">Quote Details:</h3>
    <p><strong>Square Feet:</strong> {{.SquareFeet}}</p>
    <p><strong>Design Tier:</strong> {{.Tier}}</p>
    <p><strong>Estimated Quote:</strong> {{.EstimatedQuote}}</p>
  </div>
{{- if .Message}}
  ` + htmlPanel + `
    <h3 style="color: #22333B; margin-top: 0;">Project Details:</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
{{- end}}
  <p style="color: #666; font-size: 12px; margin-top: 20px;">This email was sent from the {{.Studio}} pricing form.</p>
</div>
`

const pricingText = `New Quote Request

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Project Type: {{.ProjectType}}

Quote Details:
Square Feet: {{.SquareFeet}}
Design Tier: {{.Tier}}
Estimated Quote: {{.EstimatedQuote}}
{{- if .Message}}

Project Details:
{{.Message}}
{{- end}}

---
This email was sent from the {{.Studio}} pricing form.
`

const serviceHTML = htmlLayoutOpen + `
  <h2 style="color: #22333B;">New Service Request</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Service Type:</strong> {{.ServiceType}}</p>
    <p><strong>Timeline:</strong> {{.Timeline}}</p>
    <p><strong>Budget Range:</strong> {{.Budget}}</p>
  </div>
  ` + htmlPanel + `
    <h3 style="color: #22333B; margin-top: 0;">Project Details:</h3>
    <p style="white-space: pre-wrap;">{{.ProjectDetails}}</p>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">This email was sent from the {{.Studio}} service request form.</p>
</div>
`

const serviceText = `New Service Request

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Service Type: {{.ServiceType}}
Timeline: {{.Timeline}}
Budget Range: {{.Budget}}

Project Details:
{{.ProjectDetails}}

---
This email was sent from the {{.Studio}} service request form.
`

var (
	contactHTMLTmpl = htmltemplate.Must(htmltemplate.New("contact.html").Parse(contactHTML))
	contactTextTmpl = texttemplate.Must(texttemplate.New("contact.txt").Parse(contactText))
	pricingHTMLTmpl = htmltemplate.Must(htmltemplate.New("pricing.html").Parse(pricingHTML))
	pricingTextTmpl = texttemplate.Must(texttemplate.New("pricing.txt").Parse(pricingText))
	serviceHTMLTmpl = htmltemplate.Must(htmltemplate.New("service.html").Parse(serviceHTML))
	serviceTextTmpl = texttemplate.Must(texttemplate.New("service.txt").Parse(serviceText))
)

type executor interface {
	Execute(w io.Writer, data any) error
}

// RenderContact returns the HTML and plain-text bodies for a contact submission.
func RenderContact(data ContactEmailData) (htmlBody, textBody string, err error) {
	return render(contactHTMLTmpl, contactTextTmpl, data)
}

// RenderPricing returns the HTML and plain-text bodies for a quote request.
func RenderPricing(data PricingEmailData) (htmlBody, textBody string, err error) {
	return render(pricingHTMLTmpl, pricingTextTmpl, data)
}

// RenderService returns the HTML and plain-text bodies for a service request.
func RenderService(data ServiceEmailData) (htmlBody, textBody string, err error) {
	return render(serviceHTMLTmpl, serviceTextTmpl, data)
}

func render(htmlTmpl, textTmpl executor, data any) (string, string, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute html template: %w", err)
	}
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}
	return htmlBuf.String(), strings.TrimLeft(textBuf.String(), "\n"), nil
}

// OrDefault returns fallback when value is blank.
func OrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
