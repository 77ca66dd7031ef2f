// Package entity contains the core business objects of the project.
package entity

// UserPreferences holds the dashboard preferences a user can customize.
type UserPreferences struct {
	Theme         string `json:"theme"`         // UI theme, e.g. "light" or "dark".
	Currency      string `json:"currency"`      // Display currency code, e.g. "USD".
	Notifications bool   `json:"notifications"` // Whether in-app notifications are enabled.
}

// User represents a registered dashboard user.
type User struct {
	ID           int64            `json:"id"`                     // Sequential identifier assigned by the store.
	Username     string           `json:"username"`               // Login name, unique across all users.
	Password     string           `json:"password,omitempty"`     // Credential as provided; stripped from read/update responses.
	FullName     string           `json:"fullName,omitempty"`     // Optional display name.
	Email        string           `json:"email,omitempty"`        // Optional contact email.
	ProfileImage string           `json:"profileImage,omitempty"` // Optional avatar URL or data URI.
	Preferences  *UserPreferences `json:"preferences,omitempty"`  // Optional dashboard preferences.
}

// WithoutPassword returns a copy of the user with the password cleared.
// Every read and update response goes through this before serialization.
func (u *User) WithoutPassword() *User {
	sanitized := *u
	sanitized.Password = ""

	return &sanitized
}
