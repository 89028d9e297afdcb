package services

import (
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	// The ledger chain is shared: coordinator -> journal -> ledger
	ledger := NewAccountLedger()
	journal := NewTransactionJournal(ledger)
	coordinator := NewPaidStateCoordinator(journal)

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.TransactionRepo, repos.TxManager, journal, options...),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.TxManager, coordinator),
		Income:    NewIncomeService(repos.IncomeRepo, repos.TxManager, coordinator),
		Reporting: NewReportingService(repos.AccountRepo, repos.TransactionRepo),
	}
}
