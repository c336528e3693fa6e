package domain

import "errors"

var (
	// ErrNotOwner means the target bookmark either does not exist or is not
	// owned by the caller. The two cases are intentionally indistinguishable
	// so that edit/delete never leak whether another user's bookmark exists.
	ErrNotOwner = errors.New("bookmark does not exist or is not owned by caller")

	// ErrEmailTaken means signup was attempted with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrBadCredentials means signin failed. Unknown email and wrong password
	// report identically.
	ErrBadCredentials = errors.New("invalid email or password")
)
