package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/config"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Default admin credentials, overridable through the environment. The
// password must be changed after the first login.
const (
	defaultAdminEmail    = "admin@eduadmin.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds the default administrator account so a fresh
// install can be logged into.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	repos := repositories.NewRepositories(dbPool)

	email := config.GetEnv("SEED_ADMIN_EMAIL", defaultAdminEmail)

	_, err := repos.UserRepository.GetAdminByEmail(ctx, email)
	if err == nil {
		logger.Debug().Str("email", email).Msg("Default admin already present")
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	password := config.GetEnv("SEED_ADMIN_PASSWORD", defaultAdminPassword)
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		FullName: "Platform Administrator",
		Email:    email,
		Password: hashed,
	}
	if err := repos.UserRepository.CreateAdmin(ctx, admin); err != nil {
		// A concurrent boot may have created it in the meantime
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info().Str("adminId", admin.ID).Str("email", email).Msg("Default admin account created")
	return nil
}
