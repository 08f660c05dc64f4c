// Package gormstore is the relational storage variant, backed by a pure Go
// sqlite driver behind GORM.
package gormstore

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store bundles the per-entity repositories sharing one database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and migrates the
// schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserRecord{}, &ProjectRecord{}, &MessageRecord{}, &AgentRecord{})
}

func (s *Store) Users() *UserRepository       { return &UserRepository{db: s.db} }
func (s *Store) Projects() *ProjectRepository { return &ProjectRepository{db: s.db} }
func (s *Store) Messages() *MessageRepository { return &MessageRepository{db: s.db} }
func (s *Store) Agents() *AgentRepository     { return &AgentRepository{db: s.db} }
