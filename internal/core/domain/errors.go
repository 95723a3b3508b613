package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserNotApproved    = errors.New("user account has not yet been approved")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthorized      = errors.New("user is not authorized to make this change")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrSermonNotFound   = errors.New("sermon not found")
	ErrSermonLimit      = errors.New("sermon limit reached, only 10 sermons are allowed at a time")
	ErrUnsupportedMedia = errors.New("unsupported media type")

	ErrEventNotFound = errors.New("event not found")
)
