package ports

import "go.trai.ch/cloister/internal/core/domain"

// RecordStore persists provision audit records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get returns the record for a binary path, or nil if none exists.
	Get(binary string) (*domain.ProvisionRecord, error)
	// Put stores the record, overwriting any previous one for the same binary.
	Put(record domain.ProvisionRecord) error
}
