package snapshotworker

import (
	"context"
	"time"

	"recruiting-backend/lib/pipeline"
	snapshotstore "recruiting-backend/lib/pipeline/snapshot-store"
	baseworker "recruiting-backend/lib/utils/base-worker"
)

// StartWorker периодически и при остановке сохраняет порядок отображения воронки.
// Перед запуском восстанавливает порядок из последнего снимка.
func StartWorker(ctx context.Context, board pipeline.Provider, store snapshotstore.Provider, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("PipelineSnapshotWorker", interval, interval).WithFinalRun(10 * time.Second),
		board:    board,
		store:    store,
	}
	i.restore(ctx)
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	board pipeline.Provider
	store snapshotstore.Provider
}

func (i impl) restore(ctx context.Context) {
	logger := i.GetLogger()
	snapshot, err := i.store.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки снимка воронки")
		return
	}
	if snapshot == nil {
		return
	}
	i.board.Restore(*snapshot)
	logger.WithField("taken_at", snapshot.TakenAt).Info("порядок воронки восстановлен из снимка")
}

func (i impl) handle(ctx context.Context) {
	err := i.store.Save(ctx, i.board.Snapshot())
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка сохранения снимка воронки")
	}
}
