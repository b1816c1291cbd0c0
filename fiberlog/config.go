package fiberlog

import "github.com/sirupsen/logrus"

// Config - настройки логирования запросов
type Config struct {
	// Logger - если не задан, используется глобальный logrus
	Logger *logrus.Logger
	// Tags - поля записи лога, см. Tag* константы
	Tags []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUserID,
	},
}
