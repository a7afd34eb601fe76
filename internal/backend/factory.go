package backend

import (
	"context"
	"fmt"
	"log/slog"

	"turni/internal/amqp"
	"turni/internal/services"
	"turni/internal/store/file"
	"turni/internal/store/memory"
	"turni/internal/store/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case FileBackend:
		return f.createFileStore(config)
	case MemoryBackend:
		return f.createMemoryStore()
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createFileStore(config Config) (*Result, error) {
	if config.ShiftsFile == "" {
		return nil, fmt.Errorf("shifts file path is required for the file backend")
	}

	f.logger.Info("Initialized file store", "path", config.ShiftsFile)

	return &Result{
		Store:   file.New(config.ShiftsFile),
		Cleanup: nil,
	}, nil
}

func (f *DefaultFactory) createMemoryStore() (*Result, error) {
	f.logger.Info("Initialized memory store")

	return &Result{
		Store:   memory.New(),
		Cleanup: nil,
	}, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*Result, error) {
	sqliteStore, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	// AMQP client is optional: without it the store works standalone and the
	// mirror only heals on the worker's periodic pass.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without sync", "error", err)
			amqpClient = nil
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	f.logger.Info("Initialized SQLite store",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	cleanup := func() error {
		if amqpClient != nil {
			amqpClient.Close()
		}
		return sqliteStore.Close()
	}

	var publisher services.SyncPublisher
	if amqpClient != nil {
		publisher = amqpClient
	}

	return &Result{
		Store:   services.NewSyncStore(sqliteStore, publisher),
		Cleanup: cleanup,
	}, nil
}

// ConfigFromApp maps the application configuration onto a backend config.
func ConfigFromApp(dataBackend, shiftsFile, sqliteDBPath, amqpURL, amqpExchange, amqpQueue string) Config {
	return Config{
		Type:         Type(dataBackend),
		ShiftsFile:   shiftsFile,
		SQLiteDBPath: sqliteDBPath,
		AMQPURL:      amqpURL,
		AMQPExchange: amqpExchange,
		AMQPQueue:    amqpQueue,
	}
}
