package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFile(t *testing.T) (*File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.json")
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	return f, path
}

func TestFileWriteThenRead(t *testing.T) {
	f, _ := newTestFile(t)

	if _, ok := f.Get(KeyAccessToken); ok {
		t.Fatal("fresh store should be empty")
	}

	if err := f.Set(KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok := f.Get(KeyAccessToken)
	if !ok || v != "tok-1" {
		t.Fatalf("expected tok-1, got %q (present=%v)", v, ok)
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	f, path := newTestFile(t)

	if err := f.Set(KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := f.Set(KeyRefreshToken, "ref-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	if v, ok := reopened.Get(KeyAccessToken); !ok || v != "tok-1" {
		t.Fatalf("access token lost across reopen: %q", v)
	}
	if v, ok := reopened.Get(KeyRefreshToken); !ok || v != "ref-1" {
		t.Fatalf("refresh token lost across reopen: %q", v)
	}
}

func TestFileClearIsIdempotent(t *testing.T) {
	f, path := newTestFile(t)

	if err := f.Set(KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := f.Clear(KeyAccessToken); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := f.Clear(KeyAccessToken); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}

	if _, ok := f.Get(KeyAccessToken); ok {
		t.Fatal("cleared key still present")
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if _, ok := reopened.Get(KeyAccessToken); ok {
		t.Fatal("cleared key resurrected after reopen")
	}
}

func TestFileEmptyValueReadsAsAbsent(t *testing.T) {
	f, _ := newTestFile(t)

	if err := f.Set(KeyAccessToken, ""); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := f.Get(KeyAccessToken); ok {
		t.Fatal("empty value should read as absent")
	}
}

func TestFileRejectsCorruptContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, err := NewFile(path); err == nil {
		t.Fatal("expected error for corrupt credential file")
	}
}
