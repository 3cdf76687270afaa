package storage

import (
	"context"
	"database/sql"
	"fmt"

	"rcp_tracker/internal/adapter/persistence/repository"
	"rcp_tracker/internal/config"
	"rcp_tracker/internal/infrastructure/database"
	"rcp_tracker/internal/usecase/interfaces"

	"github.com/charmbracelet/log"
)

// Stores bundles the repositories of the configured backend.
type Stores struct {
	Tasks    interfaces.ITaskRepository
	Variants interfaces.IVariantRepository
	close    func() error
}

func (s *Stores) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func dynamoTables(cfg config.DynamoDBConfig) repository.DynamoTables {
	return repository.DynamoTables{
		Tasks:    cfg.TasksTable,
		Logs:     cfg.LogsTable,
		Locks:    cfg.LocksTable,
		Audit:    cfg.AuditTable,
		Variants: cfg.VariantsTable,
	}
}

// Open connects to the configured backend. SQLite schemas are created on
// open; DynamoDB tables are created by the migrate command.
func Open(ctx context.Context, cfg config.StorageConfig, logger *log.Logger) (*Stores, error) {
	logger = logger.WithPrefix("repo")

	switch cfg.Driver {
	case config.StorageSQLite:
		db, err := openSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite store ready", "path", cfg.SQLitePath)
		return &Stores{
			Tasks:    repository.NewTaskSQLiteRepository(db),
			Variants: repository.NewVariantSQLiteRepository(db),
			close:    db.Close,
		}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		tables := dynamoTables(cfg.DynamoDB)
		logger.Info("dynamodb store ready", "region", cfg.DynamoDB.Region, "endpoint", cfg.DynamoDB.Endpoint)
		return &Stores{
			Tasks:    repository.NewTaskDynamoRepository(ddb, tables),
			Variants: repository.NewVariantDynamoRepository(ddb, tables),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// Migrate creates the schema of the configured backend.
func Migrate(ctx context.Context, cfg config.StorageConfig, logger *log.Logger) error {
	logger = logger.WithPrefix("repo")

	switch cfg.Driver {
	case config.StorageSQLite:
		db, err := openSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		logger.Info("sqlite schema migrated", "path", cfg.SQLitePath)
		return nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		if err := repository.MigrateDynamoDB(ctx, ddb, dynamoTables(cfg.DynamoDB)); err != nil {
			return err
		}
		logger.Info("dynamodb tables ready", "region", cfg.DynamoDB.Region)
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := repository.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}
