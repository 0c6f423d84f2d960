package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExclusive(t *testing.T) {
	tests := []struct {
		name string
		opts []bool
		err  bool
	}{
		{"exactly one", []bool{true, false, false}, false},
		{"none", []bool{false, false, false}, true},
		{"two", []bool{true, true, false}, true},
		{"all", []bool{true, true, true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exclusive(tt.opts...)
			if (err != nil) != tt.err {
				t.Errorf("exclusive(%v) error = %v, wantErr %v", tt.opts, err, tt.err)
			}
		})
	}
}

func TestMissingOrEmpty(t *testing.T) {
	dir := t.TempDir()

	fresh, err := missingOrEmpty(filepath.Join(dir, "absent.db"))
	if err != nil || !fresh {
		t.Errorf("absent file: fresh=%v err=%v, want true, nil", fresh, err)
	}

	empty := filepath.Join(dir, "empty.db")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	fresh, err = missingOrEmpty(empty)
	if err != nil || !fresh {
		t.Errorf("empty file: fresh=%v err=%v, want true, nil", fresh, err)
	}

	full := filepath.Join(dir, "full.db")
	if err := os.WriteFile(full, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	fresh, err = missingOrEmpty(full)
	if err != nil || fresh {
		t.Errorf("non-empty file: fresh=%v err=%v, want false, nil", fresh, err)
	}
}

func TestDatabasePath(t *testing.T) {
	t.Setenv("PYFT_DB", "")
	if got := databasePath(); got != "pyft.db" {
		t.Errorf("default path = %q, want pyft.db", got)
	}

	t.Setenv("PYFT_DB", "/tmp/elsewhere.db")
	if got := databasePath(); got != "/tmp/elsewhere.db" {
		t.Errorf("env path = %q", got)
	}

	*dbFile = "explicit.db"
	defer func() { *dbFile = "" }()
	if got := databasePath(); got != "explicit.db" {
		t.Errorf("flag path = %q, flag must win over env", got)
	}
}
