package artifacts

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := NewStore(t.TempDir(), log)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStore_CreatesRunDirectory(t *testing.T) {
	s := testStore(t)

	info, err := os.Stat(s.Dir())
	if err != nil {
		t.Fatalf("stat run dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("run path is not a directory")
	}
	if s.RunID() == "" {
		t.Error("empty run id")
	}
	if !strings.HasSuffix(s.Dir(), s.RunID()) {
		t.Errorf("dir %q does not end with run id %q", s.Dir(), s.RunID())
	}
}

func TestNewStore_RunIDsAreUnique(t *testing.T) {
	base := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s1, err := NewStore(base, log)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s2, err := NewStore(base, log)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if s1.RunID() == s2.RunID() {
		t.Errorf("two stores share run id %q", s1.RunID())
	}
}

func TestWriteFile_TracksArtifact(t *testing.T) {
	s := testStore(t)

	if err := s.WriteFile("report.txt", []byte("region,sales\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	files := s.Files()
	if len(files) != 1 {
		t.Fatalf("got %d tracked files, want 1", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "region,sales\n" {
		t.Errorf("artifact content = %q", data)
	}
}

func TestPath_ReservesInsideRunDir(t *testing.T) {
	s := testStore(t)

	p := s.Path("roc.png")
	if filepath.Dir(p) != s.Dir() {
		t.Errorf("Path(%q) = %q, not inside %q", "roc.png", p, s.Dir())
	}
	if len(s.Files()) != 1 {
		t.Errorf("reserved path not tracked")
	}
}
