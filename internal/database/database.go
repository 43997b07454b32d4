package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/config"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all domain models. The unique indexes created
// here are the real guard behind every duplicate-forbidden invariant; the
// service-layer checks exist for error quality, not for correctness under
// concurrent writers. Name and title conflicts are case-insensitive, so
// those indexes are functional ones on LOWER() and cannot come from struct
// tags; the collaboration-title index follows the policy flag so that
// turning the rule off does not leave a stricter constraint behind.
func Migrate(cfg *config.Config) error {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.MusicGenre{},
		&models.User{},
		&models.Band{},
		&models.Collaboration{},
		&models.Convocation{},
		&models.ConvocationFavorite{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.SystemLog{},
	)
	if err != nil {
		return err
	}

	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uk_users_artistic_name_lower ON users (LOWER(artistic_name))").Error; err != nil {
		return fmt.Errorf("failed to create artistic name index: %w", err)
	}
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uk_bands_name_lower ON bands (LOWER(name))").Error; err != nil {
		return fmt.Errorf("failed to create band name index: %w", err)
	}
	if cfg.Policy.UniqueCollaborationTitles {
		if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uk_collaborations_title_lower ON collaborations (LOWER(title))").Error; err != nil {
			return fmt.Errorf("failed to create collaboration title index: %w", err)
		}
	} else if err := DB.Exec("DROP INDEX IF EXISTS uk_collaborations_title_lower").Error; err != nil {
		return fmt.Errorf("failed to drop collaboration title index: %w", err)
	}
	return nil
}

// SeedCatalogs inserts the fixed genre and role universes. Runs before the
// server accepts traffic; idempotent so restarts are safe.
func SeedCatalogs() error {
	for _, g := range catalog.MusicGenres() {
		row := models.MusicGenre{Name: g}
		if err := DB.Where(models.MusicGenre{Name: g}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed genre %s: %w", g, err)
		}
	}
	for _, r := range catalog.Roles() {
		row := models.Role{Name: r}
		if err := DB.Where(models.Role{Name: r}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", r, err)
		}
	}
	slog.Info("catalogs seeded", "genres", len(catalog.MusicGenres()), "roles", len(catalog.Roles()))
	return nil
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
