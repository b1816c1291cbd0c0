package notify

import (
	"context"
	"time"

	"recruiting-backend/lib/smtp"
	invitationapimodels "recruiting-backend/models/api/invitation"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider - канал уведомлений о приглашениях кандидатов
type Provider interface {
	SendInvitations(ctx context.Context, event invitationapimodels.InvitationEvent) error
}

var Instance Provider

func NewHandler(webhookAddr string, emails []string) {
	channels := []Provider{}
	if webhookAddr != "" {
		channels = append(channels, NewWebhook(webhookAddr, nil))
	}
	if len(emails) != 0 && smtp.Instance != nil && smtp.Instance.IsConfigured() {
		channels = append(channels, NewEmail(smtp.Instance, emails))
	}
	if len(channels) == 0 {
		log.Warn("каналы уведомлений о приглашениях не настроены")
	}
	Instance = NewMulti(channels...)
}

// NewMulti отправляет событие во все каналы. Без каналов отправка ничего не делает.
func NewMulti(channels ...Provider) Provider {
	return multi(channels)
}

type multi []Provider

func (m multi) SendInvitations(ctx context.Context, event invitationapimodels.InvitationEvent) error {
	var firstErr error
	failed := 0
	for _, channel := range m {
		if err := channel.SendInvitations(ctx, event); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return errors.Wrapf(firstErr, "не доставлено в каналов: %d из %d", failed, len(m))
	}
	return nil
}

func NewEvent(invitations []invitationapimodels.InvitationData, requisitionID string, phaseOrder int, phaseName string, now time.Time) invitationapimodels.InvitationEvent {
	return invitationapimodels.InvitationEvent{
		Event:         invitationapimodels.InvitationsEvent,
		Invitations:   invitations,
		RequisitionID: requisitionID,
		DestinationPhase: invitationapimodels.DestinationPhase{
			Order: phaseOrder,
			Name:  phaseName,
		},
		Timestamp: now.UnixMilli(),
	}
}
