package synchronization

import "context"

// RunLocked runs fn while holding lock. It reports false without running fn
// if ctx is done before the lock could be taken.
func RunLocked(ctx context.Context, lock *Lock, fn func()) bool {
	if !lock.TryLockWithContext(ctx) {
		return false
	}
	defer lock.Unlock()
	fn()
	return true
}
