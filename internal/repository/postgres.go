package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"hexago/internal/logger"
)

// Connect opens and pings a PostgreSQL connection.
func Connect(dsn string) (*sqlx.DB, error) {
	logger.Log.Debug("Initializing PostgreSQL database connection")

	cx, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: connect: %w", err)
	}
	return cx, nil
}
