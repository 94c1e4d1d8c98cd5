//go:build ignore

// smtpcheck sends one test message with the configured SMTP settings.
//
//	go run scripts/smtpcheck.go
package main

import (
	"context"
	"fmt"
	"os"

	"rrdesigns-backend/config"
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/email"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if !cfg.SMTPConfigured() {
		fmt.Println("Error: SMTP_USER and SMTP_PASS must be set")
		os.Exit(1)
	}
	sender := email.NewSMTPSender(cfg)

	htmlBody, textBody, err := email.RenderContact(email.ContactEmailData{
		Studio:      cfg.StudioName,
		Name:        "SMTP Check",
		Email:       cfg.SMTPUser,
		Phone:       email.NotAvailable,
		ProjectType: email.NotSpecified,
		Timeline:    email.NotSpecified,
		Message:     "If you can read this, form submissions will be delivered.",
	})
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	err = sender.Send(context.Background(), &domain.EmailMessage{
		FromName:    cfg.StudioName + " SMTP Check",
		FromAddress: cfg.SMTPUser,
		ToAddress:   cfg.ReceivingEmail,
		ReplyTo:     cfg.SMTPUser,
		Subject:     "SMTP check from " + cfg.StudioName + " backend",
		HTMLBody:    htmlBody,
		TextBody:    textBody,
	})
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Sent test message via %s:%d to %s\n", cfg.SMTPHost, cfg.SMTPPort, cfg.ReceivingEmail)
}
