package domain

// SaveStatus tells the caller whether a save also applied its balance effect.
type SaveStatus string

const (
	SaveSucceeded      SaveStatus = "SUCCESS"
	SavePartialSuccess SaveStatus = "PARTIAL_SUCCESS"
)

// SaveResult is returned by expense and income writes.
// PARTIAL_SUCCESS means the record was stored but its balance effect was rejected and Info says why.
// Hard failures are reported through the accompanying error instead.
type SaveResult[T any] struct {
	Status SaveStatus `json:"status"`
	Record T          `json:"record"`
	Info   string     `json:"info,omitempty"`
}

// Succeeded wraps a record whose balance effect, if any, was applied.
func Succeeded[T any](record T) SaveResult[T] {
	return SaveResult[T]{Status: SaveSucceeded, Record: record}
}

// PartiallySucceeded wraps a record that was stored without its balance effect.
func PartiallySucceeded[T any](record T, info string) SaveResult[T] {
	return SaveResult[T]{Status: SavePartialSuccess, Record: record, Info: info}
}

// IsPartial reports whether the balance effect was rejected.
func (r SaveResult[T]) IsPartial() bool {
	return r.Status == SavePartialSuccess
}

// SettlementStatus is the outcome of reconciling a paid flag with the ledger.
type SettlementStatus string

const (
	SettlementSettled   SettlementStatus = "SETTLED"
	SettlementUnchanged SettlementStatus = "UNCHANGED"
	SettlementRejected  SettlementStatus = "REJECTED"
)

// Settlement describes what the paid-state coordinator did for one record write.
type Settlement struct {
	Status       SettlementStatus
	Transactions []Transaction // Recorded in order, empty unless Settled
	Info         string        // Reason for a rejection
}

// Rejected reports whether the forward effect was refused and the record forced unpaid.
func (s Settlement) Rejected() bool {
	return s.Status == SettlementRejected
}
