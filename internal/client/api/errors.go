package api

import (
	"errors"

	"github.com/avasiliev/fittrack/internal/netx"
)

var (
	// ErrUnavailable marks connectivity failures and timeouts. It aliases the
	// netx sentinel so callers can match either.
	ErrUnavailable = netx.ErrUnreachable

	// ErrRemoteRejected means the auth endpoint answered and said no; the
	// server's message is wrapped alongside for display.
	ErrRemoteRejected = errors.New("rejected by server")

	// ErrMalformedResponse means the endpoint answered with a success status
	// but the body did not match the expected schema.
	ErrMalformedResponse = errors.New("malformed server response")
)
