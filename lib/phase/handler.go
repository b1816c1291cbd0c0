package phase

import (
	"context"
	"sync"
	"time"

	"recruiting-backend/db"
	phasestore "recruiting-backend/lib/phase/store"
	"recruiting-backend/lib/utils/errs"
	"recruiting-backend/lib/utils/helpers"
	dbmodels "recruiting-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider - реестр этапов воронки. Этапы читаются целиком один раз за сессию,
// любое внешнее изменение применяется только полной перезагрузкой.
type Provider interface {
	Load(ctx context.Context) error
	List() []dbmodels.Phase
	EntryPhase() (dbmodels.Phase, error)
	Get(id string) (dbmodels.Phase, bool)
}

var Instance Provider

func NewHandler(timeout time.Duration) {
	Instance = NewInstance(phasestore.NewInstance(db.DB), timeout)
}

func NewInstance(store phasestore.Provider, timeout time.Duration) Provider {
	return &impl{
		store:   store,
		timeout: timeout,
	}
}

type impl struct {
	store   phasestore.Provider
	timeout time.Duration

	mu     sync.RWMutex
	phases []dbmodels.Phase
	byID   map[string]int
}

func (i *impl) Load(ctx context.Context) error {
	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()
	list, err := i.store.List(ctx)
	if err != nil {
		return errs.Gateway(err, "ошибка получения списка этапов подбора")
	}
	dbmodels.SortPhases(list)
	byID := make(map[string]int, len(list))
	for k, rec := range list {
		if k > 0 && list[k-1].PhaseOrder == rec.PhaseOrder {
			return errors.Wrapf(errs.ErrConfiguration, "этапы %q и %q имеют одинаковый порядок %v",
				list[k-1].Name, rec.Name, rec.PhaseOrder)
		}
		byID[rec.ID] = k
	}

	i.mu.Lock()
	i.phases = list
	i.byID = byID
	i.mu.Unlock()

	log.WithField("phase_count", len(list)).Info("загружены этапы подбора")
	return nil
}

func (i *impl) List() []dbmodels.Phase {
	i.mu.RLock()
	defer i.mu.RUnlock()
	result := make([]dbmodels.Phase, len(i.phases))
	copy(result, i.phases)
	return result
}

func (i *impl) EntryPhase() (dbmodels.Phase, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if len(i.phases) == 0 {
		return dbmodels.Phase{}, errs.ErrConfiguration
	}
	return i.phases[0], nil
}

func (i *impl) Get(id string) (dbmodels.Phase, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	idx, ok := i.byID[id]
	if !ok {
		return dbmodels.Phase{}, false
	}
	return i.phases[idx], true
}
