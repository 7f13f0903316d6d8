package service

import "context"

// OwnershipGuard checks that a resource belongs to the requesting identity
// before it is mutated. A resource owned by someone else is reported exactly
// like a missing one.
type OwnershipGuard interface {
	VerifyOwner(ctx context.Context, resourceID, requesterID string) error
}
