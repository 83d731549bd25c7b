package entities

// LockStatus is the lock decision for a single user
type LockStatus struct {
	IsLocked bool
	// LockedTeamID is the hex ID of the team whose workspace the user is confined to,
	// empty when IsLocked is false
	LockedTeamID string
	// LockLoading is set while no definitive decision is known yet.
	// It must not be treated as unlocked.
	LockLoading bool
}
