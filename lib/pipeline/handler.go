package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"recruiting-backend/db"
	"recruiting-backend/lib/phase"
	candidatestore "recruiting-backend/lib/pipeline/store"
	"recruiting-backend/lib/utils/errs"
	"recruiting-backend/lib/utils/helpers"
	initchecker "recruiting-backend/lib/utils/init-checker"
	"recruiting-backend/lib/utils/lock"
	"recruiting-backend/models"
	pipelineapimodels "recruiting-backend/models/api/pipeline"
	dbmodels "recruiting-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider - воронка кандидатов. Держит в памяти копию кандидатов и порядок отображения по этапам
// отдельно для каждой заявки, изменения сначала применяются локально и откатываются,
// если хранилище вернуло ошибку.
type Provider interface {
	Load(ctx context.Context, requisitionID string) error
	EntryPhase() (dbmodels.Phase, error)
	MoveCandidate(ctx context.Context, candidateID, fromPhaseID, toPhaseID string) error
	ReorderWithinPhase(requisitionID, phaseID string, fromIndex, toIndex int) error
	BatchInsert(ctx context.Context, list []dbmodels.Candidate) (ids []string, err error)
	Insert(ctx context.Context, list []dbmodels.Candidate) ([]dbmodels.Candidate, error)
	Register(ctx context.Context, data pipelineapimodels.CandidateData) (dbmodels.Candidate, error)
	ChangeStatus(ctx context.Context, candidateID string, status models.CandidateStatus) error
	GetCandidate(candidateID string) (dbmodels.Candidate, bool)
	Board(requisitionID string) (pipelineapimodels.BoardView, error)
	Snapshot() Snapshot
	Restore(snapshot Snapshot)
}

var Instance Provider

func NewHandler(timeout time.Duration) {
	initchecker.CheckInit(
		"phase registry", phase.Instance,
	)
	Instance = NewInstance(phase.Instance, candidatestore.NewInstance(db.DB), timeout)
}

func NewInstance(registry phase.Provider, store candidatestore.Provider, timeout time.Duration) Provider {
	return &impl{
		registry:   registry,
		store:      store,
		timeout:    timeout,
		now:        time.Now,
		candidates: map[string]dbmodels.Candidate{},
		boards:     map[string]phaseOrder{},
	}
}

// phaseOrder - phaseID -> порядок отображения кандидатов
type phaseOrder map[string][]string

type impl struct {
	registry phase.Provider
	store    candidatestore.Provider
	timeout  time.Duration
	now      func() time.Time

	mu         sync.Mutex
	candidates map[string]dbmodels.Candidate
	boards     map[string]phaseOrder // requisitionID -> доска, "" - кандидаты без заявки
}

// requisitionKey - ключ доски кандидата
func requisitionKey(rec dbmodels.Candidate) string {
	if rec.RequisitionID == nil {
		return ""
	}
	return *rec.RequisitionID
}

// ключ блокировки загрузки, одновременно выполняется одна загрузка воронки
const loadLockKey = "pipeline-load"

// Load перечитывает доску заявки. Без заявки перечитываются все доски.
func (i *impl) Load(ctx context.Context, requisitionID string) error {
	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()
	ok, err := lock.WithDelay(ctx, loadLockKey, i.timeout, func() error {
		return i.load(ctx, requisitionID)
	})
	if err != nil {
		return err
	}
	if !ok {
		if ctx.Err() != nil {
			return errs.Gateway(ctx.Err(), "ожидание загрузки воронки")
		}
		return errors.Wrap(errs.ErrStaleState, "загрузка воронки уже выполняется")
	}
	return nil
}

func (i *impl) load(ctx context.Context, requisitionID string) error {
	logger := i.getLogger("").WithField("requisition_id", requisitionID)
	list, err := i.store.ListByRequisition(ctx, requisitionID)
	if err != nil {
		return errs.Gateway(err, "ошибка получения списка кандидатов")
	}
	for _, rec := range list {
		if _, ok := i.registry.Get(rec.CurrentPhaseID); !ok {
			logger.
				WithField("candidate_id", rec.ID).
				WithField("phase_id", rec.CurrentPhaseID).
				Warn("кандидат находится на неизвестном этапе")
		}
	}

	i.mu.Lock()
	if requisitionID == "" {
		i.candidates = make(map[string]dbmodels.Candidate, len(list))
		i.boards = map[string]phaseOrder{}
	} else {
		for id, rec := range i.candidates {
			if requisitionKey(rec) == requisitionID {
				delete(i.candidates, id)
			}
		}
		delete(i.boards, requisitionID)
	}
	for _, rec := range list {
		i.candidates[rec.ID] = rec
		i.appendToOrder(requisitionKey(rec), rec.CurrentPhaseID, rec.ID)
	}
	i.mu.Unlock()

	logger.WithField("candidate_count", len(list)).Info("воронка загружена")
	return nil
}

func (i *impl) EntryPhase() (dbmodels.Phase, error) {
	return i.registry.EntryPhase()
}

func (i *impl) MoveCandidate(ctx context.Context, candidateID, fromPhaseID, toPhaseID string) error {
	logger := i.getLogger(candidateID).
		WithField("from_phase_id", fromPhaseID).
		WithField("to_phase_id", toPhaseID)
	if _, err := i.registry.EntryPhase(); err != nil {
		return err
	}
	if _, ok := i.registry.Get(toPhaseID); !ok {
		return errs.Validation("этап не найден")
	}

	updatedAt := i.now()
	undo := i.applyMove(candidateID, toPhaseID, updatedAt)

	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()
	err := i.store.MovePhase(ctx, candidateID, fromPhaseID, toPhaseID, updatedAt)
	if err != nil {
		undo()
		if errors.Is(err, errs.ErrStaleState) {
			logger.Warn("кандидат уже перемещен, перемещение отклонено")
		} else {
			logger.WithError(err).Error("ошибка перемещения кандидата")
		}
		return errs.Gateway(err, "ошибка перемещения кандидата")
	}
	logger.Info("кандидат перемещен на этап")
	return nil
}

// applyMove - предварительное применение перемещения к копии в памяти, возвращает функцию отката
func (i *impl) applyMove(candidateID, toPhaseID string, updatedAt time.Time) (undo func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	prev, ok := i.candidates[candidateID]
	if !ok {
		return func() {}
	}
	tentative := prev
	tentative.CurrentPhaseID = toPhaseID
	tentative.UpdatedAt = updatedAt
	i.candidates[candidateID] = tentative
	key := requisitionKey(prev)
	prevIdx := -1
	moved := prev.CurrentPhaseID != toPhaseID
	if moved {
		prevIdx = i.removeFromOrder(key, prev.CurrentPhaseID, candidateID)
		i.appendToOrder(key, toPhaseID, candidateID)
	}

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		current, ok := i.candidates[candidateID]
		if !ok || current.CurrentPhaseID != toPhaseID || !current.UpdatedAt.Equal(updatedAt) {
			// запись уже изменена другой операцией
			return
		}
		i.candidates[candidateID] = prev
		if moved {
			i.removeFromOrder(key, toPhaseID, candidateID)
			i.insertToOrder(key, prev.CurrentPhaseID, candidateID, prevIdx)
		}
	}
}

func (i *impl) ReorderWithinPhase(requisitionID, phaseID string, fromIndex, toIndex int) error {
	if _, ok := i.registry.Get(phaseID); !ok {
		return errs.Validation("этап не найден")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	list := i.boards[requisitionID][phaseID]
	if fromIndex < 0 || fromIndex >= len(list) || toIndex < 0 || toIndex >= len(list) {
		return errs.Validation("позиция вне списка этапа")
	}
	if fromIndex == toIndex {
		return nil
	}
	// сдвигаются только элементы между fromIndex и toIndex
	item := list[fromIndex]
	if fromIndex < toIndex {
		copy(list[fromIndex:toIndex], list[fromIndex+1:toIndex+1])
	} else {
		copy(list[toIndex+1:fromIndex+1], list[toIndex:fromIndex])
	}
	list[toIndex] = item
	return nil
}

func (i *impl) BatchInsert(ctx context.Context, list []dbmodels.Candidate) (ids []string, err error) {
	batch, err := i.Insert(ctx, list)
	if err != nil {
		return nil, err
	}
	ids = make([]string, 0, len(batch))
	for _, rec := range batch {
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

// Insert - пакетное добавление кандидатов, возвращает сохраненные записи
func (i *impl) Insert(ctx context.Context, list []dbmodels.Candidate) (batch []dbmodels.Candidate, err error) {
	logger := i.getLogger("")
	if _, err = i.registry.EntryPhase(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []dbmodels.Candidate{}, nil
	}
	now := i.now()
	batch = make([]dbmodels.Candidate, 0, len(list))
	for _, rec := range list {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.Status == "" {
			rec.Status = models.CandidateStatusActive
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		if err = rec.Validate(); err != nil {
			return nil, errs.Validation(err.Error())
		}
		if _, ok := i.registry.Get(rec.CurrentPhaseID); !ok {
			return nil, errs.Validation("этап не найден")
		}
		batch = append(batch, rec)
	}

	i.applyInsert(batch)

	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()
	err = i.store.CreateBatch(ctx, batch)
	if err != nil {
		i.rollbackInsert(batch)
		logger.
			WithError(err).
			WithField("batch_size", len(batch)).
			Error("ошибка добавления кандидатов")
		return nil, errs.Gateway(err, "ошибка добавления кандидатов")
	}
	logger.
		WithField("batch_size", len(batch)).
		Info("добавлены кандидаты")
	return batch, nil
}

func (i *impl) applyInsert(batch []dbmodels.Candidate) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, rec := range batch {
		i.candidates[rec.ID] = rec
		i.appendToOrder(requisitionKey(rec), rec.CurrentPhaseID, rec.ID)
	}
}

func (i *impl) rollbackInsert(batch []dbmodels.Candidate) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, rec := range batch {
		current, ok := i.candidates[rec.ID]
		if !ok {
			continue
		}
		delete(i.candidates, rec.ID)
		i.removeFromOrder(requisitionKey(current), current.CurrentPhaseID, rec.ID)
	}
}

func (i *impl) Register(ctx context.Context, data pipelineapimodels.CandidateData) (dbmodels.Candidate, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Candidate{}, errs.Validation(err.Error())
	}
	phaseID := data.PhaseID
	if phaseID == "" {
		entry, err := i.registry.EntryPhase()
		if err != nil {
			return dbmodels.Candidate{}, err
		}
		phaseID = entry.ID
	}
	rec := dbmodels.Candidate{
		Name:           strings.TrimSpace(data.Name),
		Email:          strings.TrimSpace(data.Email),
		Phone:          strings.TrimSpace(data.Phone),
		RequisitionID:  helpers.PtrString(data.RequisitionID),
		Status:         models.CandidateStatusActive,
		CurrentPhaseID: phaseID,
	}
	batch, err := i.Insert(ctx, []dbmodels.Candidate{rec})
	if err != nil {
		return dbmodels.Candidate{}, err
	}
	return batch[0], nil
}

func (i *impl) ChangeStatus(ctx context.Context, candidateID string, status models.CandidateStatus) error {
	logger := i.getLogger(candidateID).WithField("status", status)
	if _, err := i.registry.EntryPhase(); err != nil {
		return err
	}
	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()

	current, ok := i.GetCandidate(candidateID)
	if !ok {
		rec, err := i.store.GetByID(ctx, candidateID)
		if err != nil {
			return errs.Gateway(err, "ошибка получения кандидата")
		}
		if rec == nil {
			return errs.Validation("кандидат не найден")
		}
		current = *rec
	}
	allowed, err := current.IsAllowStatusChange(status)
	if err != nil {
		return errs.Validation(err.Error())
	}
	if !allowed {
		return nil
	}

	updatedAt := i.now()
	undo := i.applyStatus(candidateID, status, updatedAt)
	err = i.store.UpdateStatus(ctx, candidateID, current.Status, status, updatedAt)
	if err != nil {
		undo()
		logger.WithError(err).Error("ошибка смены статуса кандидата")
		return errs.Gateway(err, "ошибка смены статуса кандидата")
	}
	logger.Info("изменен статус кандидата")
	return nil
}

func (i *impl) applyStatus(candidateID string, status models.CandidateStatus, updatedAt time.Time) (undo func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	prev, ok := i.candidates[candidateID]
	if !ok {
		return func() {}
	}
	tentative := prev
	tentative.Status = status
	tentative.UpdatedAt = updatedAt
	i.candidates[candidateID] = tentative
	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		current, ok := i.candidates[candidateID]
		if !ok || current.Status != status || !current.UpdatedAt.Equal(updatedAt) {
			return
		}
		current.Status = prev.Status
		current.UpdatedAt = prev.UpdatedAt
		i.candidates[candidateID] = current
	}
}

func (i *impl) GetCandidate(candidateID string) (dbmodels.Candidate, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.candidates[candidateID]
	return rec, ok
}

// Board - доска заявки, без заявки - кандидаты, не привязанные к заявке
func (i *impl) Board(requisitionID string) (pipelineapimodels.BoardView, error) {
	phases := i.registry.List()
	if len(phases) == 0 {
		return pipelineapimodels.BoardView{}, errs.ErrConfiguration
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	board := i.boards[requisitionID]
	result := pipelineapimodels.BoardView{
		RequisitionID: requisitionID,
		Columns:       make([]pipelineapimodels.BoardColumn, 0, len(phases)),
	}
	for _, rec := range phases {
		column := pipelineapimodels.BoardColumn{
			Phase:      pipelineapimodels.PhaseConvert(rec),
			Candidates: make([]pipelineapimodels.CandidateView, 0, len(board[rec.ID])),
		}
		for _, candidateID := range board[rec.ID] {
			candidate, ok := i.candidates[candidateID]
			if !ok || candidate.CurrentPhaseID != rec.ID || requisitionKey(candidate) != requisitionID {
				continue
			}
			column.Candidates = append(column.Candidates, pipelineapimodels.CandidateConvert(candidate))
		}
		result.Columns = append(result.Columns, column)
	}
	return result, nil
}

func (i *impl) appendToOrder(requisitionID, phaseID, candidateID string) {
	board, ok := i.boards[requisitionID]
	if !ok {
		board = phaseOrder{}
		i.boards[requisitionID] = board
	}
	board[phaseID] = append(board[phaseID], candidateID)
}

func (i *impl) removeFromOrder(requisitionID, phaseID, candidateID string) int {
	board := i.boards[requisitionID]
	list := board[phaseID]
	for idx, id := range list {
		if id == candidateID {
			board[phaseID] = append(list[:idx], list[idx+1:]...)
			return idx
		}
	}
	return -1
}

func (i *impl) insertToOrder(requisitionID, phaseID, candidateID string, idx int) {
	board, ok := i.boards[requisitionID]
	if !ok {
		board = phaseOrder{}
		i.boards[requisitionID] = board
	}
	list := board[phaseID]
	if idx < 0 || idx > len(list) {
		idx = len(list)
	}
	list = append(list, "")
	copy(list[idx+1:], list[idx:])
	list[idx] = candidateID
	board[phaseID] = list
}

func (i *impl) getLogger(candidateID string) *log.Entry {
	logger := log.WithField("module", "pipeline")
	if candidateID != "" {
		logger = logger.WithField("candidate_id", candidateID)
	}
	return logger
}
