package gateway

import (
	"fmt"

	"eduplatform/backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the relational store: postgres in production, sqlite for demo
// mode and tests.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&CatalogCourse{},
		&CatalogModule{},
		&CatalogLesson{},
		&EnrollmentRecord{},
		&LessonProgress{},
		&Quiz{},
		&QuizQuestion{},
		&QuizAttempt{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
