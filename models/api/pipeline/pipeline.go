package pipelineapimodels

import (
	"recruiting-backend/models"
	dbmodels "recruiting-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type PhaseView struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func PhaseConvert(rec dbmodels.Phase) PhaseView {
	return PhaseView{
		ID:    rec.ID,
		Order: rec.PhaseOrder,
		Name:  rec.Name,
		Color: rec.Color,
	}
}

type CandidateView struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	RequisitionID  string                 `json:"requisition_id,omitempty"`
	Status         models.CandidateStatus `json:"status"`
	StatusName     string                 `json:"status_name"`
	CurrentPhaseID string                 `json:"current_phase_id"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		ID:             rec.ID,
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Status:         rec.Status,
		StatusName:     rec.Status.ToHuman(),
		CurrentPhaseID: rec.CurrentPhaseID,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if rec.RequisitionID != nil {
		result.RequisitionID = *rec.RequisitionID
	}
	return result
}

type BoardColumn struct {
	Phase      PhaseView       `json:"phase"`
	Candidates []CandidateView `json:"candidates"`
}

type BoardView struct {
	RequisitionID string        `json:"requisition_id,omitempty"`
	Columns       []BoardColumn `json:"columns"`
}

type MoveRequest struct {
	FromPhaseID string `json:"from_phase_id"`
	ToPhaseID   string `json:"to_phase_id"`
}

func (r MoveRequest) Validate() error {
	if r.FromPhaseID == "" {
		return errors.New("не указан текущий этап")
	}
	if r.ToPhaseID == "" {
		return errors.New("не указан новый этап")
	}
	return nil
}

type StatusRequest struct {
	Status models.CandidateStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("неизвестный статус")
	}
	return nil
}

type ReorderRequest struct {
	RequisitionID string `json:"requisition_id"`
	FromIndex     int    `json:"from_index"`
	ToIndex       int    `json:"to_index"`
}

type LoadRequest struct {
	RequisitionID string `json:"requisition_id"`
}

type CandidateData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	RequisitionID string `json:"requisition_id"`
	PhaseID       string `json:"phase_id"` // если не указан - входной этап
}

func (r CandidateData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано имя кандидата")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указан email кандидата")
	}
	return nil
}
