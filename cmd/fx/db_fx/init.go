package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"xinli/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitSQLite()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseSQLite(db)
			return nil
		},
	})

	return db
}
