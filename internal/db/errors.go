package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrJobNotFound    = errors.New("job not found")
	ErrUserNotFound   = errors.New("user not found")
)
