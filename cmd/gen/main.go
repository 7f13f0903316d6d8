package main

import (
	"todo/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the persistence models.
func main() {
	models := []any{
		model.UserModel{},
		model.TodoModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
