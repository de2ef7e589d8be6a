package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetAppDataDir(t *testing.T) {
	app := test.NewApp()

	dir, err := GetAppDataDir(app)
	if err != nil {
		t.Fatalf("Failed to get app data directory: %v", err)
	}

	if dir == "" {
		t.Fatal("App data directory is empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("App data directory does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", dir)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "slot.json")

	if err := WriteFileAtomic(path, []byte(`{"num":1}`)); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != `{"num":1}` {
		t.Errorf("Unexpected content: %s", data)
	}

	// Overwrite fully replaces the previous content
	if err := WriteFileAtomic(path, []byte(`{}`)); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{}` {
		t.Errorf("Expected overwritten content '{}', got %s", data)
	}

	// No temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("Temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file, got %d", len(entries))
	}
}

func TestWriteFileAtomic_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	// A regular file where a directory is expected
	err := WriteFileAtomic(filepath.Join(blocker, "slot.json"), []byte("{}"))
	if err == nil {
		t.Error("Expected error when parent is a file, got nil")
	}
}
