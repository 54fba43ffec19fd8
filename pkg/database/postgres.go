package database

import (
	authdomain "evently-backend/internal/auth/domain"
	eventdomain "evently-backend/internal/event/domain"
	"evently-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the single process-wide connection pool.
// The pool is closed implicitly on process exit; no component opens a second one.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables plus the indexes GORM tags cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&authdomain.User{}, &eventdomain.Event{}); err != nil {
		return err
	}

	// Full-text search over title + description, backing the `q` filter.
	if err := db.Exec(`create index if not exists idx_events_fts on events using gin (to_tsvector('simple', title || ' ' || description));`).Error; err != nil {
		return err
	}

	// Organizer-scoped listings sort by date.
	return db.Exec(`create index if not exists idx_events_organizer_date on events(organizer_id, date);`).Error
}
