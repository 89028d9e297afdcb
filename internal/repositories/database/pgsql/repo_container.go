package pgsql

import (
	"time"

	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires pool-backed repositories and the transaction manager.
// lockTimeout bounds how long a unit waits for a row lock; zero waits indefinitely.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		IncomeRepo:      newPgxIncomeRepository(dbPool),
		TxManager:       &BaseRepository{Pool: dbPool, LockTimeout: lockTimeout},
	}
}
