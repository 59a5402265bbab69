package storage_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/arnavag/life-tracker/internal/storage"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	path := store.DocumentPath("doc.json")

	saved := map[string][]string{"a": {"1", "2"}, "b": {}}
	if err := store.Save(path, saved); err != nil {
		t.Fatalf("saving document: %v", err)
	}

	loaded := map[string][]string{}
	store.Load(path, &loaded)
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("expected %v after round trip, got %v", saved, loaded)
	}
}

func TestStore_LoadMissingFileLeavesEmpty(t *testing.T) {
	store := storage.NewStore(t.TempDir())

	loaded := map[string]string{}
	store.Load(store.DocumentPath("absent.json"), &loaded)
	if len(loaded) != 0 {
		t.Errorf("expected empty document for missing file, got %v", loaded)
	}
}

func TestStore_LoadCorruptFileFallsBackToBackup(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	path := store.DocumentPath("doc.json")

	if err := os.WriteFile(path+".backup", []byte(`{"key":"backup value"}`), 0o644); err != nil {
		t.Fatalf("writing backup: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"key": truncat`), 0o644); err != nil {
		t.Fatalf("writing corrupt primary: %v", err)
	}

	loaded := map[string]string{}
	store.Load(path, &loaded)
	if loaded["key"] != "backup value" {
		t.Errorf("expected backup content, got %v", loaded)
	}
}

func TestStore_LoadEmptyFileFallsBackToBackup(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	path := store.DocumentPath("doc.json")

	if err := os.WriteFile(path+".backup", []byte(`{"key":"backup value"}`), 0o644); err != nil {
		t.Fatalf("writing backup: %v", err)
	}
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("writing empty primary: %v", err)
	}

	loaded := map[string]string{}
	store.Load(path, &loaded)
	if loaded["key"] != "backup value" {
		t.Errorf("expected backup content, got %v", loaded)
	}
}

func TestStore_BackupHoldsPreviousGeneration(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	path := store.DocumentPath("doc.json")

	if err := store.Save(path, map[string]string{"generation": "first"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(path, map[string]string{"generation": "second"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	backup := map[string]string{}
	store.Load(path+".backup", &backup)
	if backup["generation"] != "first" {
		t.Errorf("expected backup to hold the first saved value, got %v", backup)
	}

	primary := map[string]string{}
	store.Load(path, &primary)
	if primary["generation"] != "second" {
		t.Errorf("expected primary to hold the second saved value, got %v", primary)
	}
}

func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	path := store.DocumentPath("doc.json")

	if err := store.Save(path, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("saving document: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away after save")
	}
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(filepath.Join(dir, "nested", "data"))
	path := store.DocumentPath("doc.json")

	if err := store.Save(path, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("saving document into missing directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected document on disk: %v", err)
	}
}
