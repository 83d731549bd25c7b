package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrInvalidTeam is returned by CreateTeam when the team fails validation
	ErrInvalidTeam = errors.New("team is invalid")

	// ErrAlreadyMember is returned when the user is already a member of the team
	ErrAlreadyMember = errors.New("user is already a member of the team")
	// ErrAlreadyRequested is returned when the user already asked to join the team
	ErrAlreadyRequested = errors.New("user already requested to join the team")
	// ErrTeamFull is returned when the team has no open slot at commit time
	ErrTeamFull = errors.New("team is full")
	// ErrNotCreator is returned when an operation reserved to the team's creator
	// is called by another user
	ErrNotCreator = errors.New("user is not the creator of the team")
	// ErrNotMember is returned when an operation reserved to members is called by a non member
	ErrNotMember = errors.New("user is not a member of the team")
	// ErrCreatorCannotLeave is returned when the creator tries to leave their team
	ErrCreatorCannotLeave = errors.New("creator cannot leave the team")
	// ErrNoJoinRequest is returned when accepting a user who has no pending request
	ErrNoJoinRequest = errors.New("user has not requested to join the team")
	// ErrJoinCodeExhausted is returned when no unique join code could be generated
	ErrJoinCodeExhausted = errors.New("could not generate a unique join code")

	// ErrSessionFrozen is returned for any mutation of a team whose session expired or was submitted
	ErrSessionFrozen = errors.New("team session is frozen")
	// ErrAlreadyStarted is returned when starting a session which is already running
	ErrAlreadyStarted = errors.New("team session has already started")
	// ErrSessionNotActive is returned when submitting a project for a session which has not started
	ErrSessionNotActive = errors.New("team session is not active")

	// ErrEmptyProjectName is returned when starting a session without a project name
	ErrEmptyProjectName = errors.New("project name must not be empty")
	// ErrUnsupportedDuration is returned when starting a session with a duration which is not allowed
	ErrUnsupportedDuration = errors.New("session duration is not supported")
	// ErrInvalidURL is returned when the submitted project link is not an absolute URL
	ErrInvalidURL = errors.New("project link is not a valid absolute URL")
	// ErrDescriptionTooShort is returned when the submitted final description is too short
	ErrDescriptionTooShort = errors.New("final description is too short")

	// ErrConcurrentUpdate is returned when a conditional update kept losing races
	// against other writers to the same team
	ErrConcurrentUpdate = errors.New("team was modified concurrently, try again")
	// ErrLockViewClosed is returned when a closed lock view is used
	ErrLockViewClosed = errors.New("lock view is closed")
)
