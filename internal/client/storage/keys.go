package storage

// Fixed keys of the key-value store. Structured values are JSON-encoded UTF-8.
const (
	KeyAuthToken       = "auth_token"       // raw token string
	KeyUserData        = "user_data"        // JSON UserProfile
	KeyFavourites      = "favourites"       // JSON sequence of Exercise
	KeyTheme           = "theme"            // "light" | "dark" | "system"
	KeyRegisteredUsers = "registered_users" // JSON sequence of LocalAccount
)
