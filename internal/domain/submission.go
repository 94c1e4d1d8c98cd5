package domain

import "context"

// ContactRequest is the contact page form.
type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	ProjectType string `json:"projectType"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message"`
}

// PricingRequest is the pricing page quote form. The quote figures are
// computed client-side and may arrive as JSON numbers.
type PricingRequest struct {
	Name           string     `json:"name" validate:"required"`
	Email          string     `json:"email" validate:"required"`
	Phone          string     `json:"phone" validate:"required"`
	ProjectType    string     `json:"projectType"`
	Message        string     `json:"message"`
	SquareFeet     FlexString `json:"squareFeet" swaggertype:"string"`
	Tier           FlexString `json:"tier" swaggertype:"string"`
	EstimatedQuote FlexString `json:"estimatedQuote" swaggertype:"string"`
}

// ServiceRequest is the services page request form.
type ServiceRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	ServiceType    string `json:"serviceType"`
	ProjectDetails string `json:"projectDetails" validate:"required"`
	Timeline       string `json:"timeline"`
	Budget         string `json:"budget"`
}

// EmailMessage is built per request and dropped once dispatch returns.
type EmailMessage struct {
	FromName    string
	FromAddress string
	ToAddress   string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// Mailer delivers one message in a single attempt.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// SubmissionUsecase defines the lead-capture form operations
type SubmissionUsecase interface {
	SubmitContact(ctx context.Context, req *ContactRequest) error
	SubmitPricingQuote(ctx context.Context, req *PricingRequest) error
	SubmitServiceRequest(ctx context.Context, req *ServiceRequest) error
}

// Client-facing messages. The 400 wording is kept stable for API callers.
const (
	MsgEmailSent             = "Email sent successfully"
	MsgContactFieldsRequired = "Name, email, and phone are required"
	MsgServiceFieldsRequired = "Name, email, phone, and project details are required"
	MsgSendFailed            = "Failed to send email. Please try again later."
	MsgInvalidBody           = "Invalid request body"
)
