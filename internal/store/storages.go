package store

import "github.com/MKhiriev/account-service/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
	}
}
