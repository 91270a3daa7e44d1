// Command gen writes typed GORM query builders for the persistence models.
// The repositories use the plain chain API; the generated package is for ad-hoc tooling and is not committed.
package main

import (
	"flag"

	"examhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/query", "output directory for generated code")
	flag.Parse()

	generator := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	generator.ApplyBasic(
		model.AccountModel{},
		model.ExamModel{},
	)

	generator.Execute()
}
