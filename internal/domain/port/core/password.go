package core

// PasswordHasher turns a registration password into its stored form and checks
// login attempts against it
type PasswordHasher interface {
	// Hash returns the value persisted in the user record
	Hash(password string) (string, error)
	// Matches reports whether password corresponds to the stored value
	Matches(stored, password string) bool
}
