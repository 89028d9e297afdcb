package sqlite

import (
	"database/sql"

	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
)

// NewRepositoryProvider wires repositories and the transaction manager over a
// database opened with database.OpenSQLite.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newSQLiteAccountRepository(db),
		TransactionRepo: newSQLiteTransactionRepository(db),
		ExpenseRepo:     newSQLiteExpenseRepository(db),
		IncomeRepo:      newSQLiteIncomeRepository(db),
		TxManager:       &BaseRepository{DB: db},
	}
}
