package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// Transactor is the subset of *gorm.DB used to open transactions.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type Repos struct {
	Form         FormRepo
	SourceRecord SourceRecordRepo
	Tx           Transactor
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:         NewFormRepo(db),
		SourceRecord: NewSourceRecordRepo(db),
		Tx:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:         r.Form.WithTx(tx),
		SourceRecord: r.SourceRecord.WithTx(tx),
		Tx:           tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.Tx.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
