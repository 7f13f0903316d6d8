package auth

import (
	"context"

	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/infra/metrics"

	"github.com/google/uuid"
)

// todoOwnershipGuard verifies todo ownership with a point lookup on id and owner.
type todoOwnershipGuard struct {
	todoRepo repository.TodoRepository
}

// NewTodoOwnershipGuard creates the ownership guard for todos.
func NewTodoOwnershipGuard(todoRepo repository.TodoRepository) service.OwnershipGuard {
	return &todoOwnershipGuard{todoRepo: todoRepo}
}

// VerifyOwner fails with NotFound("Todo") both when the todo is missing and
// when it belongs to someone else. Store failures are returned unchanged.
func (g *todoOwnershipGuard) VerifyOwner(ctx context.Context, resourceID, requesterID string) error {
	todoID, err := uuid.Parse(resourceID)
	if err != nil {
		metrics.OwnershipChecksTotal.WithLabelValues("bad_request").Inc()

		return domainerrors.ErrInvalidID.WithCause(err)
	}

	userID, err := uuid.Parse(requesterID)
	if err != nil {
		metrics.OwnershipChecksTotal.WithLabelValues("bad_request").Inc()

		return domainerrors.ErrInvalidID.WithCause(err)
	}

	count, err := g.todoRepo.CountOwned(ctx, todoID, userID)
	if err != nil {
		metrics.OwnershipChecksTotal.WithLabelValues("error").Inc()

		return err
	}

	if count == 0 {
		metrics.OwnershipChecksTotal.WithLabelValues("not_found").Inc()

		return domainerrors.ErrTodoNotFound
	}

	metrics.OwnershipChecksTotal.WithLabelValues("owned").Inc()

	return nil
}
