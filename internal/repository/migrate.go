package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Migrate applies every SQL file matching glob in name order, each in its own
// transaction. Files must be idempotent; a failed file is rolled back and
// reported, and later files still run.
func Migrate(db *sqlx.DB, glob string, log *zap.Logger) error {
	files, err := filepath.Glob(glob)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)
	var failed int
	for _, file := range files {
		if err := applyFile(db, file); err != nil {
			log.Error("migration failed", zap.String("file", file), zap.Error(err))
			failed++
			continue
		}
		log.Info("migration applied", zap.String("file", file))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d migrations failed", failed, len(files))
	}
	return nil
}

func applyFile(db *sqlx.DB, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
