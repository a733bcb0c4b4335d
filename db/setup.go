package db

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Pool bounds are deliberately small: every request holds one connection for
// its duration and nothing else competes for them.
const (
	maxOpenConns    = 3
	maxIdleConns    = 1
	connMaxIdleTime = 60 * time.Second
)

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()

	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// EnsureSchema checks for a sentinel table and runs the bundled setup script
// when it is missing, so a fresh database comes up seeded.
func EnsureSchema() error {
	if DB.Migrator().HasTable("departments") {
		log.Println("Database already initialized")
		return nil
	}

	log.Println("Schema missing, running setup script")

	script, err := LoadSetupScript()

	if err != nil {
		return err
	}

	if err := RunScript(DB, script); err != nil {
		return err
	}

	log.Println("Database initialized successfully")

	return nil
}

// Ping tests the connection with a bounded wait so a dead database can't hang
// the health check.
func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()

	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func Close() error {
	sqlDB, err := DB.DB()

	if err != nil {
		return err
	}

	return sqlDB.Close()
}
