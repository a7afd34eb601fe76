package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		backendType Type
		valid       bool
	}{
		{FileBackend, true},
		{MemoryBackend, true},
		{SQLiteBackend, true},
		{Type("sheets"), false},
		{Type(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.backendType.String(), func(t *testing.T) {
			if got := tt.backendType.IsValid(); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.backendType, got, tt.valid)
			}
		})
	}
}

func TestCreateStoreRejectsUnknownType(t *testing.T) {
	factory := NewFactory(nil)
	if _, err := factory.CreateStore(context.Background(), Config{Type: "postgres"}); err == nil {
		t.Fatalf("expected error for unknown backend type")
	}
}

func TestCreateMemoryStore(t *testing.T) {
	factory := NewFactory(nil)
	result, err := factory.CreateStore(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	if result.Store == nil {
		t.Fatalf("memory result has nil store")
	}
	if result.Cleanup != nil {
		t.Errorf("memory store needs no cleanup")
	}
}

func TestCreateFileStore(t *testing.T) {
	factory := NewFactory(nil)

	if _, err := factory.CreateStore(context.Background(), Config{Type: FileBackend}); err == nil {
		t.Fatalf("expected error for empty shifts file path")
	}

	path := filepath.Join(t.TempDir(), "shifts.csv")
	result, err := factory.CreateStore(context.Background(), Config{Type: FileBackend, ShiftsFile: path})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	shifts, err := result.Store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on fresh file store failed: %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("fresh store returned %d shifts, want 0", len(shifts))
	}
}

func TestCreateSQLiteStoreWithoutAMQP(t *testing.T) {
	factory := NewFactory(nil)
	cfg := Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "turni.db"),
	}
	result, err := factory.CreateStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	defer result.Cleanup()

	if result.Cleanup == nil {
		t.Fatalf("sqlite result must carry a cleanup function")
	}
	shifts, err := result.Store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on fresh sqlite store failed: %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("fresh store returned %d shifts, want 0", len(shifts))
	}
}
