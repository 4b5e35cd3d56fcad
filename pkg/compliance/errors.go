package compliance

import "errors"

var (
	// ErrCycleDetected means a hierarchy traversal revisited a tenant.
	ErrCycleDetected = errors.New("cycle detected in tenant hierarchy")

	// ErrNoGovernanceConfigured means no rule matched at any fallback level.
	ErrNoGovernanceConfigured = errors.New("no governance rule configured")

	// ErrInvalidMappingStrength means a mapping percentage is outside the
	// allowed range and must be rejected at write time.
	ErrInvalidMappingStrength = errors.New("mapping strength outside allowed range")

	// ErrInconsistentSnapshot means underlying data changed while a
	// calculation was reading it.
	ErrInconsistentSnapshot = errors.New("data changed during calculation")
)
