package config

import (
	"strings"
	"time"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Log struct {
		Level string `default:"info" env:"LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruiting" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Pipeline struct {
		// ограничение ожидания хранилища для операций воронки и аналитики
		GatewayTimeoutSec int `default:"10" env:"PIPELINE_GATEWAY_TIMEOUT_SEC"`
		// загрузка кандидатов в память при старте
		LoadOnStart *bool `default:"true" env:"PIPELINE_LOAD_ON_START"`
	}
	Snapshot struct {
		Enabled     *bool  `default:"false" env:"SNAPSHOT_ENABLED"`
		IntervalSec int    `default:"300" env:"SNAPSHOT_INTERVAL_SEC"`
		Object      string `default:"pipeline/board.json" env:"SNAPSHOT_OBJECT"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"recruiting" env:"S3_BUCKET_NAME"`
	}
	Notify struct {
		InvitationWebhook string `default:"" env:"NOTIFY_INVITATION_WEBHOOK"`
		InvitationEmails  string `default:"" env:"NOTIFY_INVITATION_EMAILS"` // через запятую
		ErrorWebhook      string `default:"" env:"NOTIFY_ERROR_WEBHOOK"`
		TimeoutSec        int    `default:"5" env:"NOTIFY_TIMEOUT_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

func (c *Configuration) GatewayTimeout() time.Duration {
	return time.Duration(c.Pipeline.GatewayTimeoutSec) * time.Second
}

func (c *Configuration) NotifyTimeout() time.Duration {
	return time.Duration(c.Notify.TimeoutSec) * time.Second
}

func (c *Configuration) SnapshotInterval() time.Duration {
	return time.Duration(c.Snapshot.IntervalSec) * time.Second
}

func (c *Configuration) InvitationEmails() []string {
	result := []string{}
	for _, email := range strings.Split(c.Notify.InvitationEmails, ",") {
		email = strings.TrimSpace(email)
		if email != "" {
			result = append(result, email)
		}
	}
	return result
}
