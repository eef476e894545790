package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used when the user table was first
// populated. Raising it only affects newly stored hashes.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash returns false for any mismatch or malformed hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
