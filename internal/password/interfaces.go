package password

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// Hasher produces and checks one-way salted password hashes.
type Hasher interface {
	// Hash returns an encoded hash of plain. Two calls with the same input
	// return different strings because the salt is random.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the encoded hash. A malformed
	// hash returns ErrInvalidHash.
	Verify(plain, encoded string) (bool, error)
}
