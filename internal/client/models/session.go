package models

// Session is the token+profile pair representing "currently logged in".
// A session exists only when both parts are present and non-empty; partial
// persisted state is treated as no session.
type Session struct {
	Token   string
	Profile UserProfile
}
