package initializers

import (
	"context"

	"recruiting-backend/config"
	"recruiting-backend/fiberlog"
	xlsexport "recruiting-backend/lib/export/xls"
	"recruiting-backend/lib/indicators"
	"recruiting-backend/lib/invitation"
	"recruiting-backend/lib/notify"
	"recruiting-backend/lib/phase"
	"recruiting-backend/lib/pipeline"
	snapshotstore "recruiting-backend/lib/pipeline/snapshot-store"
	snapshotworker "recruiting-backend/lib/pipeline/snapshot-worker"
	s3client "recruiting-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection(ctx)
	InitSmtp()
	if *config.Conf.Snapshot.Enabled {
		InitS3(ctx)
	}

	phase.NewHandler(config.Conf.GatewayTimeout())
	if err := phase.Instance.Load(ctx); err != nil {
		// сервис стартует, операции воронки вернут ошибку конфигурации до перезагрузки этапов
		log.WithError(err).Error("Ошибка загрузки этапов подбора")
	}
	pipeline.NewHandler(config.Conf.GatewayTimeout())
	if *config.Conf.Pipeline.LoadOnStart {
		if err := pipeline.Instance.Load(ctx, ""); err != nil {
			log.WithError(err).Error("Ошибка загрузки воронки")
		}
	}
	notify.NewHandler(config.Conf.Notify.InvitationWebhook, config.Conf.InvitationEmails())
	invitation.NewHandler(config.Conf.NotifyTimeout())
	xlsexport.NewHandler()
	indicators.NewHandler(config.Conf.GatewayTimeout())
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача сохранения порядка отображения воронки
	if *config.Conf.Snapshot.Enabled && s3client.Client != nil {
		store := snapshotstore.NewInstance(s3client.Client, config.Conf.S3.BucketName, config.Conf.Snapshot.Object)
		snapshotworker.StartWorker(ctx, pipeline.Instance, store, config.Conf.SnapshotInterval())
	}
}
