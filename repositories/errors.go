package repositories

import "errors"

var (
	// ErrNotFound is returned when the requested team does not exist
	ErrNotFound = errors.New("team could not be found")
	// ErrConditionFailed is returned by conditional updates when the stored team
	// does not exist or does not satisfy the condition at commit time
	ErrConditionFailed = errors.New("team did not satisfy the update condition")
	// ErrDuplicateJoinCode is returned when a team is inserted with a join code
	// which is already assigned to another team
	ErrDuplicateJoinCode = errors.New("join code is already taken")
)
