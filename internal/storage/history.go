package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"nbt/internal/config"
	"nbt/internal/domain"
)

// HistorySink records run metadata to a central MySQL database so that
// workshop CI fleets can aggregate results across machines. It is optional:
// with no database configured in the environment it does nothing.
type HistorySink struct {
	config *config.Config
}

// NewHistorySink creates a new HistorySink
func NewHistorySink(cfg *config.Config) *HistorySink {
	return &HistorySink{config: cfg}
}

// Enabled reports whether a history database is configured. The .env file
// (loaded during the environment check) supplies the NBT_DB_* variables.
func (h *HistorySink) Enabled() bool {
	return os.Getenv("NBT_DB_DATABASE") != ""
}

// Record inserts one row per run plus one per failed case.
func (h *HistorySink) Record(report *domain.RunReport) error {
	db, err := h.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := h.ensureSchema(db); err != nil {
		return err
	}

	res, err := db.Exec(
		`INSERT INTO nbt_runs (total, passed, failed, skipped, duration_seconds, relaxed, ran_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.Meta.TotalNotebooks,
		report.Meta.Passed,
		report.Meta.Failed,
		report.Meta.Skipped,
		report.Meta.DurationSeconds,
		report.Meta.Relaxed,
		report.Meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, f := range report.Failures {
		_, err := db.Exec(
			`INSERT INTO nbt_failures (run_id, notebook_path, category, cell_index, ename, evalue)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, f.NotebookPath, f.Category, f.CellIndex, f.Ename, f.Evalue,
		)
		if err != nil {
			return fmt.Errorf("record failure for %s: %w", f.NotebookPath, err)
		}
	}
	return nil
}

func (h *HistorySink) connect() (*sql.DB, error) {
	host := os.Getenv("NBT_DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("NBT_DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("NBT_DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("NBT_DB_PASSWORD")
	database := os.Getenv("NBT_DB_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	return db, nil
}

func (h *HistorySink) ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS nbt_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			total INT NOT NULL,
			passed INT NOT NULL,
			failed INT NOT NULL,
			skipped INT NOT NULL,
			duration_seconds DOUBLE NOT NULL,
			relaxed BOOLEAN NOT NULL,
			ran_at VARCHAR(64) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS nbt_failures (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id BIGINT NOT NULL,
			notebook_path VARCHAR(512) NOT NULL,
			category VARCHAR(64) NOT NULL,
			cell_index INT NOT NULL,
			ename VARCHAR(255) NOT NULL,
			evalue TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure history schema: %w", err)
		}
	}
	return nil
}
