package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner scopes a function to one hotel-database transaction. Repository
// mutators accept the transaction handle and fall back to their own
// connection when it is nil.
type TxRunner interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
