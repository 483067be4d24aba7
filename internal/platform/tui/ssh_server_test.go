package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-combos/internal/storage"
)

func TestSSHServerShutdownClosesOwnedStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "combos.db")

	srv, err := NewSSHServer(cfg, Session{})
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	store := srv.base.Store
	if store == nil || !srv.ownsStore {
		t.Fatal("server should open its own store when none is supplied")
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if srv.base.Store != nil {
		t.Error("Shutdown() should release the owned store")
	}
	if _, err := store.RecordMove(storage.MoveRecord{GameID: "trainer", Move: "Jump", Length: 1}); err == nil {
		t.Error("owned store should be closed after Shutdown()")
	}
}

func TestSSHServerShutdownKeepsSuppliedStore(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t)

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")

	srv, err := NewSSHServer(cfg, Session{Store: store})
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := store.RecordMove(storage.MoveRecord{GameID: "trainer", Move: "Jump", Length: 1}); err != nil {
		t.Errorf("supplied store should stay open after Shutdown(): %v", err)
	}
}
