package notify

import (
	"context"
	"fmt"
	"strings"

	"recruiting-backend/lib/smtp"
	"recruiting-backend/lib/utils/helpers"
	invitationapimodels "recruiting-backend/models/api/invitation"
)

func NewEmail(sender smtp.Provider, recipients []string) Provider {
	return &email{
		sender:     sender,
		recipients: recipients,
	}
}

type email struct {
	sender     smtp.Provider
	recipients []string
}

func (e email) SendInvitations(ctx context.Context, event invitationapimodels.InvitationEvent) error {
	if helpers.IsContextDone(ctx) {
		return ctx.Err()
	}
	subject := fmt.Sprintf("Приглашено кандидатов: %d", len(event.Invitations))
	return e.sender.SendEMail(ctx, e.recipients, subject, InvitationMessage(event))
}

func InvitationMessage(event invitationapimodels.InvitationEvent) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Этап: %d. %s\r\n", event.DestinationPhase.Order, event.DestinationPhase.Name))
	if event.RequisitionID != "" {
		sb.WriteString(fmt.Sprintf("Заявка: %s\r\n", event.RequisitionID))
	}
	sb.WriteString("\r\n")
	for _, rec := range event.Invitations {
		line := rec.Name + " <" + rec.Email + ">"
		if rec.Phone != "" {
			line += ", " + rec.Phone
		}
		sb.WriteString(line + "\r\n")
	}
	return sb.String()
}
