package database

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"gorm.io/gorm"
)

// backupArgs builds the mysqldump argument list from the DB_* env vars plus
// optional extra flags from DB_BACKUP_FLAGS (space-separated).
func backupArgs() []string {
	args := []string{
		"-h", getenv("DB_HOST", "127.0.0.1"),
		"-P", getenv("DB_PORT", "3306"),
		"-u", getenv("DB_USER", "root"),
	}
	if pass := os.Getenv("DB_PASS"); pass != "" {
		args = append(args, "-p"+pass)
	}
	if extra := os.Getenv("DB_BACKUP_FLAGS"); extra != "" {
		for _, f := range strings.Fields(extra) {
			args = append(args, f)
		}
	}
	return append(args, getenv("DB_NAME", "spacered"))
}

// BackupDatabase writes a SQL dump to outPath using mysqldump when it is
// available on PATH.
func BackupDatabase(outPath string) error {
	if _, err := exec.LookPath("mysqldump"); err != nil {
		return fmt.Errorf("mysqldump not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(context.Background(), "mysqldump", backupArgs()...)
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	cmd.Stdout = outFile
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mysqldump failed: %w", err)
	}
	return nil
}

// RunMigrationsWithBackup runs AutoMigrate inside a transaction, after
// kicking off a best-effort mysqldump backup when DB_BACKUP_PATH is set.
func RunMigrationsWithBackup(db *gorm.DB, models ...interface{}) error {
	if backupPath := os.Getenv("DB_BACKUP_PATH"); backupPath != "" {
		go func() {
			if err := BackupDatabase(backupPath); err != nil {
				fmt.Fprintf(os.Stderr, "[migrate] backup gagal: %v\n", err)
			}
		}()
		// allow a small window for the backup to start
		time.Sleep(500 * time.Millisecond)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.AutoMigrate(models...); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
