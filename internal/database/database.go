package database

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	return sqlx.Connect("pgx", dsn)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	no_of_appliances INT NOT NULL DEFAULT 0,
	last_month_bill DOUBLE PRECISION NOT NULL DEFAULT 0,
	role TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS devices (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	power_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	usage_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'OFF',
	last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS energy_logs (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date TIMESTAMPTZ NOT NULL,
	total_energy_used DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_devices_user ON devices(user_id);
CREATE INDEX IF NOT EXISTS idx_energy_logs_user_date ON energy_logs(user_id, date);
`

// Migrate applies the schema. Idempotent, safe to run on every start.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
