package db

import (
	"context"
	phasestore "recruiting-backend/lib/phase/store"
	dbmodels "recruiting-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload(ctx context.Context) {
	fillPhases(ctx)
}

// fillPhases - если этапы не настроены, заполняем набором по умолчанию
func fillPhases(ctx context.Context) {
	store := phasestore.NewInstance(DB)
	list, err := store.List(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка заполнения этапов подбора")
		return
	}
	if len(list) != 0 {
		return
	}
	for k, name := range dbmodels.DefaultPhases {
		rec := dbmodels.Phase{
			PhaseOrder: k,
			Name:       name,
			Color:      dbmodels.DefaultPhaseColor(k),
		}
		if _, err = store.Create(ctx, rec); err != nil {
			log.WithError(err).Errorf("ошибка добавления этапа подбора: %v", name)
			return
		}
	}
	log.Info("этапы подбора заполнены значениями по умолчанию")
}
