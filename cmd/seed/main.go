// cmd/seed creates the operator account and loads the starting owners and
// materials. Safe to rerun: owners are skipped, material rates and the
// operator password are reset.
//
// Usage: SEED_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"agencyledger/internal/config"
	"agencyledger/internal/infra"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	viper.SetDefault("SEED_USERNAME", "admin")
	viper.SetDefault("SEED_DISPLAY_NAME", "Counter")
	username := viper.GetString("SEED_USERNAME")
	password := viper.GetString("SEED_PASSWORD")
	if len(password) < 4 {
		log.Fatal().Msg("SEED_PASSWORD must be at least 4 characters")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt")
	}
	op := &model.Operator{
		Username:     username,
		DisplayName:  viper.GetString("SEED_DISPLAY_NAME"),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := repository.NewOperatorRepository(db).Upsert(ctx, op); err != nil {
		log.Fatal().Err(err).Msg("failed to save operator")
	}

	if err := seedMasterData(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().
		Str("operator", username).
		Int("owners", len(seedOwners)).
		Int("materials", len(seedMaterials)).
		Msg("seed complete")
}

func seedMasterData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range seedOwners {
			if err := tx.Exec(`INSERT INTO vehicle_owners (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name).Error; err != nil {
				return err
			}
		}
		for _, m := range seedMaterials {
			err := tx.Exec(`
				INSERT INTO materials (name, rate_per_unit, unit) VALUES (?, ?, ?)
				ON CONFLICT (name) DO UPDATE
				SET rate_per_unit = EXCLUDED.rate_per_unit,
				    unit = EXCLUDED.unit,
				    updated_at = now()`, m.Name, m.Rate, m.Unit).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
