package db

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/seungyeah/tootodo-be/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		conf.PgUser,
		conf.PgPassword,
		conf.PgHost,
		conf.PgPort,
		conf.PgDatabase,
		conf.PgSSLMode,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}
