// Package common defines shared sentinel errors used across the client
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	ErrDuplicateAccount = errors.New("username or email already exists")
	ErrInvalidToken     = errors.New("invalid token")
)
