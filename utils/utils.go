package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 14

// HashPasscode produces the bcrypt hash stored in ADMIN_PASSCODE_HASH.
func HashPasscode(passcode string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(passcode), BcryptCost)
	return string(bytes), err
}

// CheckPasscodeHash verifies an operator-entered passcode against the
// configured hash.
func CheckPasscodeHash(passcode, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
