package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/taskdesk/taskdesk/internal/conf"
	"github.com/taskdesk/taskdesk/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Store owns the database handle. Handlers receive it explicitly instead of
// going through a package-level connection.
type Store struct {
	db *gorm.DB
}

// New opens the database described by the config and migrates the schema.
// The sqlite backend is the default and creates its data directory on demand.
func New(cfg *conf.Config) (*Store, error) {
	database := cfg.Database
	gormCfg := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: database.TablePrefix},
		Logger:         logger.Discard,
	}
	if cfg.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}
	var dialector gorm.Dialector
	switch database.Type {
	case "", "sqlite", "sqlite3":
		dbFile := database.DBFile
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "failed to create db directory %s", dir)
			}
		}
		dialector = sqlite.Open(fmt.Sprintf("%s?_journal=WAL&_fk=1", dbFile))
	case "mysql":
		dsn := database.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				database.User, database.Password, database.Host, database.Port, database.Name)
		}
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := database.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
				database.Host, database.User, database.Password, database.Name, database.Port, database.SSLMode)
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database type: %s", database.Type)
	}
	g, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}
	return NewWithDB(g)
}

// NewWithDB wraps an already opened gorm handle. Used by New and by tests.
func NewWithDB(g *gorm.DB) (*Store, error) {
	if err := g.AutoMigrate(&model.Task{}, &model.Comment{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}
	return &Store{db: g}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(sqlDB.Close())
}
