package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"registro-api/internal/app/models"
	"registro-api/internal/app/repositories"
	"registro-api/internal/config"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/auth"
)

// CreateDefaultData creates the initial admin account when one is configured
// and no account with that email exists yet. Startup proceeds even if
// seeding fails.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		lgr.Debug().Msg("No seed account configured, skipping")
		return nil
	}

	usuarioRepo := repositories.NewUsuarioRepository(dbPool)

	exists, err := usuarioRepo.ExistsByEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if seed account exists")
		return err
	}
	if exists {
		lgr.Debug().Str("email", cfg.Seed.AdminEmail).Msg("Seed account already exists, skipping")
		return nil
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Creating seed account...")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing seed account password")
		return err
	}

	username := cfg.Seed.AdminUsername
	if username == "" {
		username = "admin"
	}

	usuario := &models.Usuario{
		Email:    cfg.Seed.AdminEmail,
		Username: username,
		Password: hashedPassword,
	}
	if err := usuarioRepo.Create(ctx, usuario); err != nil {
		// A concurrent instance may have seeded first
		if errors.Is(err, apperrors.ErrConflict) {
			lgr.Debug().Msg("Seed account created concurrently, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating seed account")
		return err
	}

	lgr.Info().Int64("usuarioId", usuario.ID).Msg("Seed account created")
	return nil
}
