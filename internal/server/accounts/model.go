package accounts

import "time"

// Account is a registered user of the API. PasswordHash is the bcrypt
// digest of the credential; the raw password is never stored and the hash
// is never serialized to clients.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
