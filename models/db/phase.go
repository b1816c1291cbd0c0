package dbmodels

import (
	"sort"

	"github.com/pkg/errors"
)

// Phase - этап воронки подбора. Порядок этапов задается PhaseOrder, этап с минимальным порядком - входной.
type Phase struct {
	BaseModel
	PhaseOrder int    `gorm:"uniqueIndex"`
	Name       string `gorm:"type:varchar(255)"`
	Color      string `gorm:"type:varchar(20)"`
}

func (p Phase) Validate() error {
	if p.Name == "" {
		return errors.New("не указано название этапа")
	}
	return nil
}

const (
	ReviewPhase    string = "Revisión CV"
	ScreenPhase    string = "Entrevista telefónica"
	InterviewPhase string = "Entrevista"
	ClientPhase    string = "Entrevista con cliente"
	OfferPhase     string = "Oferta"
	HiredPhase     string = "Contratado"
)

var DefaultPhases = []string{ReviewPhase, ScreenPhase, InterviewPhase, ClientPhase, OfferPhase, HiredPhase}

var defaultPhaseColors = []string{"#9e9e9e", "#2196f3", "#3f51b5", "#9c27b0", "#ff9800", "#4caf50"}

func DefaultPhaseColor(idx int) string {
	return defaultPhaseColors[idx%len(defaultPhaseColors)]
}

func SortPhases(list []Phase) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].PhaseOrder < list[j].PhaseOrder
	})
}
