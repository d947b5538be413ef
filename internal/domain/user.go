package domain

// User represents an account in the system. PasswordHash never serializes.
type User struct {
	ID           int64   `json:"-"`
	Username     string  `json:"username"`
	Email        *string `json:"email,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Disabled     bool    `json:"disabled"`
	PasswordHash string  `json:"-"`
}
