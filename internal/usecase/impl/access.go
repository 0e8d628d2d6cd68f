// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"

	"github.com/google/uuid"
)

// requireContractor is the single capability check every mutation performs at
// the engine boundary, instead of scattering role branches through callers.
func requireContractor(actor entity.Actor) error {
	if actor.Role != entity.RoleContractor {
		return domainerrors.ErrContractorOnly
	}

	return nil
}

// requireSelfOrContractor gates worker-scoped reads: contractors see every
// worker, a worker account sees only the worker it is linked to.
func requireSelfOrContractor(actor entity.Actor, workerID uuid.UUID) error {
	if actor.Role == entity.RoleContractor {
		return nil
	}
	if actor.Role == entity.RoleWorker && actor.WorkerID != nil && *actor.WorkerID == workerID {
		return nil
	}

	return domainerrors.ErrWorkerScopeViolation
}
