package main

import (
	"huntlog/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.HuntModel{},
		model.EncounterModel{},
		model.DelegateGrantModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
