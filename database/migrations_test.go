package database

import (
	"strings"
	"testing"
)

func TestBackupArgs(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "spacered")
	t.Setenv("DB_PASS", "rahasia")
	t.Setenv("DB_NAME", "spacered")
	t.Setenv("DB_BACKUP_FLAGS", "--single-transaction --quick")

	got := strings.Join(backupArgs(), " ")
	want := "-h db.internal -P 3307 -u spacered -prahasia --single-transaction --quick spacered"
	if got != want {
		t.Fatalf("backupArgs:\ngot  %s\nwant %s", got, want)
	}
}

func TestBackupArgsDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_BACKUP_FLAGS", "")

	args := backupArgs()
	got := strings.Join(args, " ")
	want := "-h 127.0.0.1 -P 3306 -u root spacered"
	if got != want {
		t.Fatalf("backupArgs defaults:\ngot  %s\nwant %s", got, want)
	}
	// no stray empty argument for the missing password or flags
	for _, a := range args {
		if a == "" {
			t.Fatal("backupArgs produced an empty argument")
		}
	}
}
