package utils

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"quizbuilder/backend/config"
	"quizbuilder/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the store named by cfg.DatabaseURL and creates the schema if it
// does not exist yet. postgres:// and postgresql:// URLs go to Postgres,
// sqlite://<path> to SQLite. Slow queries and errors go to logger; a nil
// logger discards them. Driver errors are translated, so unique violations
// surface as gorm.ErrDuplicatedKey.
func InitDB(cfg *config.Config, logger *log.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// newGormLogger reports warnings and errors only. Lookups that find nothing are
// expected (unknown emails, foreign quiz ids) and are not logged.
func newGormLogger(logger *log.Logger) gormlogger.Interface {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.QuizResult{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func dialectorFor(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("sqlite url %q has no path", url)
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL scheme: %q", url)
	}
}
