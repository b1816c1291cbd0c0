package initializers

import (
	"context"

	"recruiting-backend/config"
	"recruiting-backend/db"
)

func InitDBConnection(ctx context.Context) {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload(ctx)
}
