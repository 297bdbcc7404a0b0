package db

import "testing"

func TestOpenGorm_BadDSN(t *testing.T) {
	if _, err := OpenGorm("not-a-dsn"); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}

func TestOpenGorm_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network dial in -short")
	}
	dsn := "user:pass@tcp(127.0.0.1:1)/nope?parseTime=true"
	if _, err := OpenGorm(dsn); err == nil {
		t.Fatal("expected connection error")
	}
}
