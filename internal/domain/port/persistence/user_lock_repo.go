package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/port/core"
)

// UserLockRepository serializes checkout attempts per user.
// The lock is advisory with a TTL so a crashed worker cannot
// wedge a user forever.
type UserLockRepository interface {
	// AcquireLock attempts to take the per-user lock for the given TTL.
	//
	// Possible errors:
	// - ErrUserLocked: If another checkout currently holds the lock
	AcquireLock(ctx context.Context, userID uint64, ttl core.Duration) error

	// ReleaseLock releases the per-user lock. Releasing a lock that is
	// not held is not an error.
	ReleaseLock(ctx context.Context, userID uint64) error
}
