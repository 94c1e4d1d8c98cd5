package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"
	"rrdesigns-backend/pkg/email"
	"rrdesigns-backend/pkg/logger"
	"rrdesigns-backend/pkg/metrics"
	"rrdesigns-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// MailSettings is the sending identity used for every notification.
type MailSettings struct {
	StudioName     string
	FromAddress    string
	ReceivingEmail string
}

type submissionUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
	settings MailSettings
}

// NewSubmissionUsecase creates the lead-capture form usecase
func NewSubmissionUsecase(mailer domain.Mailer, validate *validator.Validate, settings MailSettings) domain.SubmissionUsecase {
	return &submissionUsecase{
		mailer:   mailer,
		validate: validate,
		settings: settings,
	}
}

// SubmitContact validates a contact form submission and emails it to the studio
func (uc *submissionUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	trimAll(&req.Name, &req.Email, &req.Phone, &req.ProjectType, &req.Timeline, &req.Message)
	if err := uc.check("contact", req, domain.MsgContactFieldsRequired); err != nil {
		return err
	}

	htmlBody, textBody, err := email.RenderContact(email.ContactEmailData{
		Studio:      uc.settings.StudioName,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: email.OrDefault(req.ProjectType, email.NotSpecified),
		Timeline:    email.OrDefault(req.Timeline, email.NotSpecified),
		Message:     req.Message,
	})
	if err != nil {
		return uc.sendFailed("contact", err)
	}

	return uc.dispatch(ctx, "contact", &domain.EmailMessage{
		FromName: uc.settings.StudioName + " Contact Form",
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", req.Name),
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
}

// SubmitPricingQuote validates a quote request and emails it to the studio
func (uc *submissionUsecase) SubmitPricingQuote(ctx context.Context, req *domain.PricingRequest) error {
	trimAll(&req.Name, &req.Email, &req.Phone, &req.ProjectType, &req.Message)
	req.SquareFeet = domain.FlexString(strings.TrimSpace(req.SquareFeet.String()))
	req.Tier = domain.FlexString(strings.TrimSpace(req.Tier.String()))
	req.EstimatedQuote = domain.FlexString(strings.TrimSpace(req.EstimatedQuote.String()))
	if err := uc.check("pricing", req, domain.MsgContactFieldsRequired); err != nil {
		return err
	}

	htmlBody, textBody, err := email.RenderPricing(email.PricingEmailData{
		Studio:         uc.settings.StudioName,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ProjectType:    email.OrDefault(req.ProjectType, email.NotSpecified),
		SquareFeet:     email.OrDefault(req.SquareFeet.String(), email.NotAvailable),
		Tier:           email.OrDefault(req.Tier.String(), email.NotAvailable),
		EstimatedQuote: email.OrDefault(req.EstimatedQuote.String(), email.NotAvailable),
		Message:        req.Message,
	})
	if err != nil {
		return uc.sendFailed("pricing", err)
	}

	return uc.dispatch(ctx, "pricing", &domain.EmailMessage{
		FromName: uc.settings.StudioName + " Quote Request",
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Quote Request from %s", req.Name),
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
}

// SubmitServiceRequest validates a service request and emails it to the studio
func (uc *submissionUsecase) SubmitServiceRequest(ctx context.Context, req *domain.ServiceRequest) error {
	trimAll(&req.Name, &req.Email, &req.Phone, &req.ServiceType, &req.ProjectDetails, &req.Timeline, &req.Budget)
	if err := uc.check("service-request", req, domain.MsgServiceFieldsRequired); err != nil {
		return err
	}

	htmlBody, textBody, err := email.RenderService(email.ServiceEmailData{
		Studio:         uc.settings.StudioName,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ServiceType:    email.OrDefault(req.ServiceType, email.NotSpecified),
		Timeline:       email.OrDefault(req.Timeline, email.NotSpecified),
		Budget:         email.OrDefault(req.Budget, email.NotSpecified),
		ProjectDetails: req.ProjectDetails,
	})
	if err != nil {
		return uc.sendFailed("service-request", err)
	}

	return uc.dispatch(ctx, "service-request", &domain.EmailMessage{
		FromName: uc.settings.StudioName + " Service Request",
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Service Request: %s", email.OrDefault(req.ServiceType, "General Inquiry")),
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
}

// check runs schema validation. Missing field names are logged, never returned.
func (uc *submissionUsecase) check(form string, req any, message string) error {
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Info("Rejected form submission",
			"form", form,
			"missing_fields", validation.MissingFields(err),
		)
		metrics.RecordSubmission(form, metrics.OutcomeInvalid)
		return apperror.BadRequest(message)
	}
	return nil
}

// dispatch fills in the studio addresses and makes the single send attempt.
// The send is detached from request cancellation so an abandoned HTTP call
// does not cut an SMTP transaction short.
func (uc *submissionUsecase) dispatch(ctx context.Context, form string, msg *domain.EmailMessage) error {
	msg.FromAddress = uc.settings.FromAddress
	msg.ToAddress = uc.settings.ReceivingEmail

	start := time.Now()
	err := uc.mailer.Send(context.WithoutCancel(ctx), msg)
	metrics.ObserveSend(form, time.Since(start))
	if err != nil {
		return uc.sendFailed(form, err)
	}

	metrics.RecordSubmission(form, metrics.OutcomeSent)
	logger.Log.Info("Form submission emailed", "form", form)
	return nil
}

func (uc *submissionUsecase) sendFailed(form string, err error) error {
	logger.Log.Error("Error sending email", "form", form, "error", err)
	metrics.RecordSubmission(form, metrics.OutcomeFailed)
	return apperror.Internal(domain.MsgSendFailed, err)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
