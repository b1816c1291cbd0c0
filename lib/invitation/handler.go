package invitation

import (
	"context"
	"strings"
	"time"

	"recruiting-backend/lib/notify"
	"recruiting-backend/lib/pipeline"
	"recruiting-backend/lib/utils/helpers"
	initchecker "recruiting-backend/lib/utils/init-checker"
	"recruiting-backend/models"
	invitationapimodels "recruiting-backend/models/api/invitation"
	dbmodels "recruiting-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Invite создает кандидатов на входном этапе воронки. Записи без имени или email пропускаются.
	Invite(ctx context.Context, batch []invitationapimodels.InvitationData, requisitionID string) (InviteResult, error)
}

type InviteResult struct {
	Candidates []dbmodels.Candidate
	Skipped    int
}

var Instance Provider

func NewHandler(notifyTimeout time.Duration) {
	initchecker.CheckInit(
		"pipeline", pipeline.Instance,
		"notify", notify.Instance,
	)
	Instance = NewInstance(pipeline.Instance, notify.Instance, notifyTimeout)
}

func NewInstance(board pipeline.Provider, notifier notify.Provider, notifyTimeout time.Duration) Provider {
	return &impl{
		board:         board,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		now:           time.Now,
	}
}

type impl struct {
	board         pipeline.Provider
	notifier      notify.Provider
	notifyTimeout time.Duration
	now           func() time.Time
	// вызывается после завершения отправки уведомления
	notified func(err error)
}

func (i *impl) Invite(ctx context.Context, batch []invitationapimodels.InvitationData, requisitionID string) (InviteResult, error) {
	logger := log.
		WithField("module", "invitation").
		WithField("requisition_id", requisitionID)
	entry, err := i.board.EntryPhase()
	if err != nil {
		return InviteResult{}, err
	}

	accepted := make([]invitationapimodels.InvitationData, 0, len(batch))
	list := make([]dbmodels.Candidate, 0, len(batch))
	for _, data := range batch {
		if !data.IsComplete() {
			continue
		}
		data = invitationapimodels.InvitationData{
			Name:  strings.TrimSpace(data.Name),
			Email: strings.TrimSpace(data.Email),
			Phone: strings.TrimSpace(data.Phone),
		}
		accepted = append(accepted, data)
		list = append(list, dbmodels.Candidate{
			Name:           data.Name,
			Email:          data.Email,
			Phone:          data.Phone,
			RequisitionID:  helpers.PtrString(requisitionID),
			Status:         models.CandidateStatusActive,
			CurrentPhaseID: entry.ID,
		})
	}
	result := InviteResult{
		Candidates: []dbmodels.Candidate{},
		Skipped:    len(batch) - len(list),
	}
	if result.Skipped > 0 {
		logger.WithField("skipped", result.Skipped).Info("пропущены приглашения без имени или email")
	}
	if len(list) == 0 {
		return result, nil
	}

	created, err := i.board.Insert(ctx, list)
	if err != nil {
		return InviteResult{}, err
	}
	result.Candidates = created
	logger.
		WithField("invited", len(created)).
		WithField("phase_id", entry.ID).
		Info("кандидаты приглашены")

	event := notify.NewEvent(accepted, requisitionID, entry.PhaseOrder, entry.Name, i.now())
	go i.sendNotify(context.WithoutCancel(ctx), event, logger)
	return result, nil
}

// sendNotify - доставка не влияет на результат приглашения, ошибки только логируются
func (i *impl) sendNotify(ctx context.Context, event invitationapimodels.InvitationEvent, logger *log.Entry) {
	ctx, cancel := helpers.WithTimeout(ctx, i.notifyTimeout)
	defer cancel()
	err := i.notifier.SendInvitations(ctx, event)
	if err != nil {
		logger.WithError(err).Warn("ошибка отправки уведомления о приглашениях")
	}
	if i.notified != nil {
		i.notified(err)
	}
}
