package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	summaryTable := `
	CREATE TABLE IF NOT EXISTS group_summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		question TEXT,
		group_key TEXT,
		favorable INTEGER,
		total INTEGER,
		share REAL,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(runTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}
	if _, err := db.Exec(summaryTable); err != nil {
		return err
	}

	return nil
}

// SaveRun stores a new report run
func SaveRun(runID string, spec model.ReportSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, specJSON, "pending", now, now)
	return err
}

// SaveRunError records an error for a run
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// UpdateRunStatus updates run status
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveQuestionResult stores the per-group rows of one aggregated question
func SaveQuestionResult(runID string, result *model.QuestionResult) error {
	now := time.Now().UTC()
	for _, key := range result.Summary.SortedKeys() {
		t := result.Tallies[key]
		_, err := db.Exec(
			`INSERT INTO group_summaries (run_id, question, group_key, favorable, total, share, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, result.Question, key, t.Favorable, t.Total, result.Summary[key], now)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListRuns returns all runs with basic info
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches full run spec and status
func GetRun(runID string) (map[string]interface{}, error) {
	var specJSON string
	var status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.ReportSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}
