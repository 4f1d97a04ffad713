package models

// User is a registered account. Email is the login key and is unique at the
// storage level.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
}
