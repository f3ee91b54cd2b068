package services

// ScreenGroup identifies which surface of the UI the user is on. The CLI maps
// its command sets onto the same groups the mobile navigation used.
type ScreenGroup string

const (
	// GroupEntry is the initial surface before any navigation decision.
	GroupEntry ScreenGroup = "entry"
	// GroupAuth is the login/registration surface.
	GroupAuth ScreenGroup = "auth"
	// GroupMain is the authenticated main surface.
	GroupMain ScreenGroup = "main"
	// GroupDetail is an authenticated detail surface (a single exercise).
	GroupDetail ScreenGroup = "detail"
)

// ResolveRedirect decides where to send the user after an authentication
// state change. It is a pure function with exactly four redirecting cases:
// unauthenticated users are sent off protected surfaces to auth,
// authenticated users are sent off the auth surface to main, and the entry
// point always resolves to one side or the other. Any other combination
// stays put.
func ResolveRedirect(authenticated bool, current ScreenGroup) (ScreenGroup, bool) {
	switch {
	case !authenticated && (current == GroupMain || current == GroupDetail):
		return GroupAuth, true
	case authenticated && current == GroupAuth:
		return GroupMain, true
	case authenticated && current == GroupEntry:
		return GroupMain, true
	case !authenticated && current == GroupEntry:
		return GroupAuth, true
	}
	return current, false
}
