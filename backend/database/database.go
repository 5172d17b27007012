package database

import (
	"fmt"
	"sync/atomic"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"

	"vincit.fi/image-magnifier/common/logger"
)

type Database struct {
	instance db.Session
}

func NewDatabase(file string) *Database {
	logger.Info.Printf("Initializing metadata cache database %s", file)
	settings := sqlite.ConnectionURL{
		Database: file,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}

	return &Database{
		instance: session,
	}
}

var inMemoryDatabaseCounter int64

// NewInMemoryDatabase opens a database that lives only in memory. Each call
// gets its own uniquely named database so separate stores never share state;
// cache=shared makes the session's pooled connections see the one schema, and
// the pool is pinned to a single connection so the database is not dropped
// when the pool goes idle.
func NewInMemoryDatabase() *Database {
	logger.Debug.Print("Initializing in-memory database")
	name := fmt.Sprintf("memory-%d.db", atomic.AddInt64(&inMemoryDatabaseCounter, 1))
	settings := sqlite.ConnectionURL{
		Database: name,
		Options: map[string]string{
			"mode":  "memory",
			"cache": "shared",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening in-memory database ", err)
	}
	session.SetMaxOpenConns(1)
	session.SetMaxIdleConns(1)

	return &Database{
		instance: session,
	}
}

func (s *Database) Session() db.Session {
	return s.instance
}

func (s *Database) Close() error {
	return s.instance.Close()
}

func (s *Database) Migrate() {
	if !s.migrationTableExists() {
		logger.Info.Print("Migration table doesn't exist. Creating...")
		if _, err := s.instance.SQL().Exec(`
			CREATE TABLE migrations (
				id TEXT PRIMARY KEY
			)
		`); err != nil {
			logger.Error.Fatal("Error while creating migration table ", err)
		}
	}

	if err := s.migrate(); err != nil {
		logger.Error.Fatal("Error while running migrations ", err)
	}
	logger.Debug.Print("All migrations done")
}

func (s *Database) migrationTableExists() bool {
	rows, err := s.instance.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name = 'migrations';
	`)
	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) migrate() error {
	return s.instance.Tx(func(session db.Session) error {
		migrationId := "0001"

		if statement, err := session.SQL().Prepare(`SELECT count(*) FROM migrations WHERE id = ?`); err != nil {
			return err
		} else {
			numFound := 0
			statement.QueryRow(migrationId).Scan(&numFound)
			if numFound > 0 {
				logger.Trace.Printf("Migration %s already run", migrationId)
				return nil
			}
		}

		if statement, err := session.SQL().Prepare(`INSERT INTO migrations (id) VALUES (?)`); err != nil {
			return err
		} else if _, err := statement.Exec(migrationId); err != nil {
			return err
		}

		logger.Info.Printf("Running migration %s", migrationId)
		query := `
			CREATE TABLE image_meta_data (
			    id INTEGER PRIMARY KEY,
			    file_name TEXT,
				directory TEXT,
				byte_size INT,
				image_angle INT,
				image_flip INT,
				width INT,
				height INT,
				modified_timestamp TIMESTAMP,

				UNIQUE (directory, file_name)
			);
		`
		if _, err := session.SQL().Exec(query); err != nil {
			return err
		}
		return nil
	})
}
