package postgre

import (
	"context"
	"database/sql"

	"github.com/volatiletech/sqlboiler/v4/boil"

	"content-srv/pkg/log"
)

type txKey struct{}

// TxFunc is the unit of work run by WithinTx.
type TxFunc func(ctx context.Context) error

//go:generate mockery --name TxManager
type TxManager interface {
	// WithinTx runs fn inside a transaction carried by ctx. Nested calls join the outer one.
	WithinTx(ctx context.Context, fn TxFunc) error
}

type txManager struct {
	db *sql.DB
	l  log.Logger
}

// NewTxManager returns a TxManager over db.
func NewTxManager(db *sql.DB, l log.Logger) TxManager {
	return &txManager{db: db, l: l}
}

func (m *txManager) WithinTx(ctx context.Context, fn TxFunc) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.l.Errorf(ctx, "pkg.postgre.WithinTx: Failed to begin transaction: %v", err)
		return MapError(err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.l.Warnf(ctx, "pkg.postgre.WithinTx: Failed to rollback: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		m.l.Errorf(ctx, "pkg.postgre.WithinTx: Failed to commit: %v", err)
		return MapError(err)
	}
	return nil
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// Executor returns the transaction carried by ctx, or db when there is none.
func Executor(ctx context.Context, db *sql.DB) boil.ContextExecutor {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db
}
