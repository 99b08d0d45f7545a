package identity

// Store persists a single client identity.
// Implementations must be safe for concurrent access.
type Store interface {
	// Load returns the stored identity, or ErrNoIdentity.
	Load() (*Identity, error)

	// Save stores id, replacing any previous identity.
	Save(id *Identity) error

	// Delete removes the stored identity. Deleting an empty store is not
	// an error.
	Delete() error

	// Exists reports whether an identity is stored.
	Exists() bool
}
