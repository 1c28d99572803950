package main

import (
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/config"
	"github.com/linskybing/formkit/internal/config/db"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/pkg/logger"
)

// Resets the database to the example form and one submission.
func main() {
	config.LoadConfig()
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	seed := application.NewSeedService(repository.NewRepositories(db.DB))
	f, rec, err := seed.Reset()
	if err != nil {
		logger.Fatalf("Failed to seed database: %v", err)
	}
	logger.Infof("Seeded form %q (%s) with record %s", f.Name, f.ID, rec.ID)
}
