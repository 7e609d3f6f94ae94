// Package ledger is the write path: every mutation validates its input,
// computes the intended post-state, attempts the backend write and then
// reconciles the result into the shared snapshot. Payables degrade to the
// local cache when the backend rejects the write; every other entity
// surfaces the failure and leaves local state untouched.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fenix_office/internal/logger"
	"fenix_office/internal/ports"
	"fenix_office/internal/services/sync"
)

// ErrValidation marks rejections raised before any network call.
var ErrValidation = errors.New("validation failed")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

type Service struct {
	store ports.Store
	cache ports.PayableCache
	state *sync.Service
	audit ports.ActivityRecorder
	log   zerolog.Logger
	now   func() time.Time
}

func New(store ports.Store, cache ports.PayableCache, state *sync.Service, audit ports.ActivityRecorder) *Service {
	return &Service{
		store: store,
		cache: cache,
		state: state,
		audit: audit,
		log:   logger.WithComponent("ledger"),
		now:   time.Now,
	}
}

func (s *Service) record(action, entity, entityID, userID string) {
	if s.audit != nil {
		s.audit.Record(action, entity, entityID, userID)
	}
}

func newID() string {
	return uuid.NewString()
}
