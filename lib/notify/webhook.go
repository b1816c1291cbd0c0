package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	invitationapimodels "recruiting-backend/models/api/invitation"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func NewWebhook(addr string, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &webhook{
		addr:   addr,
		client: client,
	}
}

type webhook struct {
	addr   string
	client *http.Client
}

func (w webhook) SendInvitations(ctx context.Context, event invitationapimodels.InvitationEvent) error {
	logger := log.
		WithField("channel", "webhook").
		WithField("requisition_id", event.RequisitionID)
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации уведомления")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.addr, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса уведомления")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "ошибка отправки уведомления")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("канал уведомлений вернул статус %d", resp.StatusCode)
	}
	logger.WithField("invitation_count", len(event.Invitations)).Info("уведомление о приглашениях отправлено")
	return nil
}
