// Command gen generates type-safe query helpers for the owned tables.
package main

import (
	"civicradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserLocationModel{},
		model.NotificationPreferenceModel{},
		model.PushSubscriptionModel{},
		model.DispatchLogModel{},
		model.ReportModel{},
		model.GeofenceRegionModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
