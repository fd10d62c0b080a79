package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	datetime   TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'upcoming',
	alerted_at TEXT
);
`

// SQLiteStore is the alternate Provider backend, selected when the config
// path does not end in .json.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

// Load opens the database, creating it if absent. Open failures degrade to
// an empty in-memory-only session rather than aborting.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if err := s.open(); err != nil {
		logger.Warn("Failed to open reminder database, starting empty", "path", s.path, "error", err)
		s.db = nil
	}
	return nil
}

func (s *SQLiteStore) open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO reminders (id, title, category, datetime, notes, created_at, status, alerted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		reminder.ID, reminder.Title, reminder.Category, reminder.DateTime,
		reminder.Notes, reminder.CreatedAt, string(reminder.Status), reminder.AlertedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetReminder(id string) (models.Reminder, error) {
	if s.db == nil {
		return models.Reminder{}, fmt.Errorf("storage not loaded")
	}

	var r models.Reminder
	var status string

	err := s.db.QueryRow(`
		SELECT id, title, category, datetime, notes, created_at, status, alerted_at
		FROM reminders
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Title, &r.Category, &r.DateTime, &r.Notes, &r.CreatedAt, &status, &r.AlertedAt)

	if err == sql.ErrNoRows {
		return models.Reminder{}, fmt.Errorf("reminder not found: %s", id)
	}
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	r.Status = normalizeStatus(status)
	return r, nil
}

func (s *SQLiteStore) GetAllReminders() ([]models.Reminder, error) {
	if s.db == nil {
		// Open failed during Load; run on the empty collection.
		return []models.Reminder{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, title, category, datetime, notes, created_at, status, alerted_at
		FROM reminders
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var r models.Reminder
		var status string

		if err := rows.Scan(&r.ID, &r.Title, &r.Category, &r.DateTime, &r.Notes, &r.CreatedAt, &status, &r.AlertedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}

		r.Status = normalizeStatus(status)
		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return reminders, nil
}

func (s *SQLiteStore) UpdateReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	result, err := s.db.Exec(`
		UPDATE reminders SET
			title = ?, category = ?, datetime = ?, notes = ?, status = ?, alerted_at = ?
		WHERE id = ?
	`,
		reminder.Title, reminder.Category, reminder.DateTime, reminder.Notes,
		string(reminder.Status), reminder.AlertedAt, reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("reminder not found: %s", reminder.ID)
	}

	return nil
}

func (s *SQLiteStore) DeleteReminder(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	result, err := s.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("reminder not found: %s", id)
	}

	return nil
}

// ReplaceAll rewrites the table to match the given collection in one
// transaction, mirroring the JSON backend's whole-collection writes.
func (s *SQLiteStore) ReplaceAll(reminders []models.Reminder) error {
	if s.db == nil {
		logger.Warn("Reminder database unavailable, dropping write")
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reminders`); err != nil {
		return fmt.Errorf("failed to clear reminders: %w", err)
	}

	for _, r := range reminders {
		_, err := tx.Exec(`
			INSERT INTO reminders (id, title, category, datetime, notes, created_at, status, alerted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			r.ID, r.Title, r.Category, r.DateTime, r.Notes, r.CreatedAt, string(r.Status), r.AlertedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert reminder: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func normalizeStatus(status string) models.Status {
	if status == "" {
		return models.StatusUpcoming
	}
	return models.Status(status)
}
