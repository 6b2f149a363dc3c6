package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectPostgres opens the PostgreSQL record store and creates its tables.
func ConnectPostgres(postgresURI string) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, postgresURI)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	slog.Info("✅ Connected to PostgreSQL")

	if err := InitTables(ctx, db, DriverPostgres); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitTables creates all record tables and indexes if they don't exist.
func InitTables(ctx context.Context, db *sql.DB, driver string) error {
	timestampType := "TIMESTAMPTZ"
	if driver == DriverSQLite {
		timestampType = "DATETIME"
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS daily_logs (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			date VARCHAR(10) NOT NULL,
			morning_activities TEXT NOT NULL DEFAULT '[]',
			afternoon_activities TEXT NOT NULL DEFAULT '[]',
			night_activities TEXT NOT NULL DEFAULT '[]',
			feelings TEXT NOT NULL DEFAULT '',
			ai_recommendations TEXT NOT NULL DEFAULT '[]',
			created_at {ts} NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS goals (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			ten_year_goal TEXT NOT NULL DEFAULT '',
			one_year_goal TEXT NOT NULL DEFAULT '',
			three_month_goal TEXT NOT NULL DEFAULT '',
			created_at {ts} NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS mind_reframes (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			dont_want TEXT NOT NULL DEFAULT '[]',
			want TEXT NOT NULL DEFAULT '[]',
			created_at {ts} NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_reviews (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			week_start VARCHAR(10) NOT NULL,
			went_well TEXT NOT NULL DEFAULT '',
			not_well TEXT NOT NULL DEFAULT '',
			gratitude TEXT NOT NULL DEFAULT '',
			goal TEXT NOT NULL DEFAULT '',
			focus_projects TEXT NOT NULL DEFAULT '',
			created_at {ts} NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS growth_plans (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			skills_needed TEXT NOT NULL DEFAULT '[]',
			distractions TEXT NOT NULL DEFAULT '[]',
			created_at {ts} NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_daily_logs_user_date ON daily_logs(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user_created_at ON goals(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_mind_reframes_user_created_at ON mind_reframes(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_reviews_user_week ON weekly_reviews(user_id, week_start)`,
		`CREATE INDEX IF NOT EXISTS idx_growth_plans_user_created_at ON growth_plans(user_id, created_at)`,
	}

	for _, query := range queries {
		query = strings.ReplaceAll(query, "{ts}", timestampType)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("init tables: %w", err)
		}
	}

	slog.Info("✅ Record tables initialized", "driver", driver)
	return nil
}

// Rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
// Queries must not contain literal question marks.
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
