package main

import (
	"homio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProjectModel{},
		model.ProjectTranslationModel{},
		model.LocationModel{},
		model.PricingModel{},
		model.YieldModel{},
		model.MediaModel{},
		model.DocumentModel{},
		model.BuildingModel{},
		model.LayoutModel{},
		model.UnitModel{},
		model.UnitFeatureModel{},
		model.AmenityModel{},
		model.DeveloperModel{},
		model.DeveloperTranslationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
