package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/logger"
)

// NotificationService emails merchants when their billing status degrades.
type NotificationService struct {
	client    *resend.Client
	queries   db.Querier
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewNotificationService creates a new notification service backed by Resend.
func NewNotificationService(apiKey string, fromEmail string, fromName string, queries db.Querier) *NotificationService {
	return &NotificationService{
		client:    resend.NewClient(apiKey),
		queries:   queries,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger.Log,
	}
}

// NotifyMerchantStatusChange sends a billing-status email to the merchant's
// contact address. Called when a subscription transitions to past_due or
// canceled.
func (s *NotificationService) NotifyMerchantStatusChange(ctx context.Context, merchantID uuid.UUID, status string) error {
	merchant, err := s.queries.GetMerchant(ctx, merchantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("merchant %s not found for notification", merchantID)
		}
		return fmt.Errorf("failed to load merchant %s for notification: %w", merchantID, err)
	}

	subject, html := statusChangeEmail(merchant.BusinessName, status)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{merchant.ContactEmail},
		Subject: subject,
		Html:    html,
		Tags: []resend.Tag{
			{Name: "category", Value: "billing"},
			{Name: "status", Value: status},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send %s notification to merchant %s: %w", status, merchantID, err)
	}

	s.logger.Info("Sent billing status notification",
		zap.String("merchant_id", merchantID.String()),
		zap.String("status", status),
		zap.String("email_id", sent.Id))

	return nil
}

func statusChangeEmail(businessName, status string) (subject, html string) {
	switch status {
	case StatusPastDue:
		subject = "Action needed: your subscription payment is past due"
		html = fmt.Sprintf(
			"<p>Hi %s,</p><p>We could not collect your latest subscription payment. "+
				"Please update your payment method to keep notifications flowing for your customers.</p>",
			businessName)
	case StatusCanceled:
		subject = "Your subscription has been canceled"
		html = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your subscription has been canceled. "+
				"You can resubscribe at any time to restore customer notifications.</p>",
			businessName)
	default:
		subject = fmt.Sprintf("Your subscription status changed to %s", status)
		html = fmt.Sprintf("<p>Hi %s,</p><p>Your subscription status is now %s.</p>", businessName, status)
	}
	return subject, html
}
