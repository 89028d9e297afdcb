package dto

import "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"

// SaveResultResponse is the body returned by expense and income writes.
// Info is set only when the record was saved but its balance effect was rejected.
type SaveResultResponse[T any] struct {
	Status string `json:"status"`
	Record T      `json:"record"`
	Info   string `json:"info,omitempty"`
}

// ToSaveResultResponse converts a domain.SaveResult using convert for the record.
func ToSaveResultResponse[D, T any](res domain.SaveResult[D], convert func(*D) T) SaveResultResponse[T] {
	return SaveResultResponse[T]{
		Status: string(res.Status),
		Record: convert(&res.Record),
		Info:   res.Info,
	}
}
