package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/VHAlvesS/caseAnka-backend/internal/config"
	"github.com/VHAlvesS/caseAnka-backend/internal/database"
	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

// Seeds the asset catalog. Existing names are left untouched, so the
// command is safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	repo, err := database.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

	assets := []usecase.Asset{
		{Name: "Ação XYZ", Price: 12.5},
		{Name: "Fundo AFC", Price: 118.3},
		{Name: "Ação LNM", Price: 1000.0},
		{Name: "Fundo LKY", Price: 2.75},
	}

	if err := repo.SeedAssets(context.Background(), assets); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %d assets", len(assets))
}
