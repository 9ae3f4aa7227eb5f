package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/avelichko/consult-api/internal/config"
)

// Open connects to the consultation database described by cfg and
// verifies the connection with a ping before returning it.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	// The site runs on shared hosting that caps MySQL connections, so
	// the pool stays small and connections are recycled promptly.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// dsn builds the driver connection string.  parseTime/loc keep the
// created_at and recorded_at columns scanning into UTC time.Time values;
// appointment dates and times are plain strings and pass through untouched.
func dsn(cfg config.Config) string {
	cred := cfg.DBUser
	if cfg.DBPass != "" {
		cred += ":" + cfg.DBPass
	}
	return cred + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName +
		"?charset=utf8mb4&parseTime=true&loc=UTC"
}
