package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection and runs migrations
func Open(cfg Config) error {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	DB, err = sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Run migrations
	if err := migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// migrate runs all database migrations
func migrate() error {
	// Create migrations table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Run each migration
	for _, m := range migrations {
		if err := runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}

	return nil
}

type migration struct {
	name string
	up   string
}

func runMigration(m migration) error {
	// Check if already applied
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	// Run migration
	if _, err := DB.Exec(m.up); err != nil {
		return err
	}

	// Record migration
	_, err = DB.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_users",
		up: `
			CREATE TABLE users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				email TEXT NOT NULL UNIQUE COLLATE NOCASE,
				name TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'employee',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_users_email ON users(email);
		`,
	},
	{
		name: "002_create_employees",
		up: `
			CREATE TABLE employees (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL UNIQUE,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				department TEXT NOT NULL DEFAULT '',
				team TEXT NOT NULL DEFAULT '',
				manager_id INTEGER,
				joining_date DATETIME DEFAULT CURRENT_TIMESTAMP,
				archived INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
				FOREIGN KEY (manager_id) REFERENCES employees(id) ON DELETE SET NULL
			);
			CREATE INDEX idx_employees_user_id ON employees(user_id);
			CREATE INDEX idx_employees_manager_id ON employees(manager_id);
		`,
	},
	{
		name: "003_create_tasks",
		up: `
			CREATE TABLE tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'incomplete',
				due_date DATETIME,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_tasks_employee_id ON tasks(employee_id);
			CREATE INDEX idx_tasks_status ON tasks(status);
		`,
	},
	{
		name: "004_create_events",
		up: `
			CREATE TABLE events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				starts_at DATETIME NOT NULL,
				archived INTEGER NOT NULL DEFAULT 0,
				created_by INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_events_starts_at ON events(starts_at);

			CREATE TABLE event_rsvps (
				event_id INTEGER NOT NULL,
				employee_id INTEGER NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (event_id, employee_id),
				FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
				FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_event_rsvps_employee_id ON event_rsvps(employee_id);
		`,
	},
	{
		name: "005_create_posts",
		up: `
			CREATE TABLE posts (
				id TEXT PRIMARY KEY,
				author_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				body TEXT NOT NULL,
				hidden INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_posts_author_id ON posts(author_id);
			CREATE INDEX idx_posts_created_at ON posts(created_at);
		`,
	},
	{
		name: "006_create_badges",
		up: `
			CREATE TABLE badges (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				icon TEXT NOT NULL DEFAULT '',
				archived INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_badges_name ON badges(name);

			CREATE TABLE badge_awards (
				badge_id TEXT NOT NULL,
				employee_id INTEGER NOT NULL,
				awarded_by INTEGER NOT NULL,
				awarded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (badge_id, employee_id),
				FOREIGN KEY (badge_id) REFERENCES badges(id) ON DELETE CASCADE,
				FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_badge_awards_employee_id ON badge_awards(employee_id);
		`,
	},
	{
		name: "007_create_milestones",
		up: `
			CREATE TABLE milestones (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				achieved_at DATETIME NOT NULL,
				hidden INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_milestones_employee_id ON milestones(employee_id);
		`,
	},
	{
		name: "008_create_notifications",
		up: `
			CREATE TABLE notifications (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id INTEGER NOT NULL,
				message TEXT NOT NULL,
				read INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_notifications_employee_id ON notifications(employee_id);
		`,
	},
}
