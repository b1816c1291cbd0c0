package invitationapimodels

import (
	pipelineapimodels "recruiting-backend/models/api/pipeline"
	"strings"

	"github.com/pkg/errors"
)

type InvitationData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// IsComplete - записи без имени или email отбрасываются из пакета
func (d InvitationData) IsComplete() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Email) != ""
}

type InviteRequest struct {
	RequisitionID string           `json:"requisition_id"`
	Invitations   []InvitationData `json:"invitations"`
}

func (r InviteRequest) Validate() error {
	if len(r.Invitations) == 0 {
		return errors.New("список приглашений пуст")
	}
	return nil
}

type InviteResponse struct {
	Candidates []pipelineapimodels.CandidateView `json:"candidates"`
	Created    int                               `json:"created"`
	Skipped    int                               `json:"skipped"`
}

type DestinationPhase struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
}

// InvitationEvent - событие во внешний канал уведомлений
type InvitationEvent struct {
	Event            string           `json:"event"`
	Invitations      []InvitationData `json:"invitations"`
	RequisitionID    string           `json:"requisitionId"`
	DestinationPhase DestinationPhase `json:"destinationPhase"`
	Timestamp        int64            `json:"timestamp"`
}

const InvitationsEvent = "invitations"
