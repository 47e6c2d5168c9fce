package sec

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the longest password bcrypt accepts. Anything longer
// fails to hash, so signup validation rejects it up front.
const MaxPasswordBytes = 72

// ComparePassword returns an error if the provided password does not resolve
// to the given hash. [Authenticate] uses this to check login credentials
// against the hash stored at signup.
func ComparePassword[T ~string | ~[]byte](password T, hash []byte) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

// HashPassword generates the hash stored for a new user, whether created
// through signup, the user CLI, or seeding. It errors if the password is
// longer than [MaxPasswordBytes].
func HashPassword[T ~string | ~[]byte](password T) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
