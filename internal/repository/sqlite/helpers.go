package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/prepdeck/prepdeck/internal/logger"
)

// Helper functions shared across repository implementations

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
