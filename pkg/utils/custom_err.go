package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidVerifyToken = errors.New("invalid or expired verification token")
	ErrDatabaseError      = errors.New("database error")

	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrSignatureMismatch  = errors.New("payment signature mismatch")
	ErrPaymentNotFound    = errors.New("payment attempt not found")
	ErrAlreadyProcessed   = errors.New("payment already processed")

	ErrTeamNotFound    = errors.New("team not found")
	ErrTeamNameTaken   = errors.New("team name already taken")
	ErrTeamFull        = errors.New("team is full")
	ErrAlreadyInTeam   = errors.New("already in a team")
	ErrNotInTeam       = errors.New("not in a team")
	ErrInvalidJoinCode = errors.New("invalid join code")

	ErrInvalidRepoURL     = errors.New("invalid repository url")
	ErrRepoNotPublic      = errors.New("repository is not public")
	ErrRepoMissingReadme  = errors.New("repository has no README")
	ErrSubmissionNotFound = errors.New("submission not found")
)
