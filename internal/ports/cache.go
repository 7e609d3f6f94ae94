package ports

import "fenix_office/internal/models"

// PayableCache is the local fallback store for the payables collection,
// used when the backend table is unreachable. Save replaces the whole
// collection; the cache always mirrors whatever was last merged into
// memory.
type PayableCache interface {
	Load() ([]models.Payable, error)
	Save(payables []models.Payable) error
}

// ActivityRecorder receives best-effort audit records for mutations.
type ActivityRecorder interface {
	Record(action, entity, entityID, userID string)
}
