package initializers

import (
	"context"

	"recruiting-backend/config"
	s3client "recruiting-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 - клиент нужен только для снимков воронки, ошибка подключения не останавливает сервис
func InitS3(ctx context.Context) {
	err := s3client.Connect(ctx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey,
		*config.Conf.S3.UseSSL, config.Conf.S3.BucketName)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
