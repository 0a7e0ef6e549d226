package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/scrypt"

	"github.com/colabora-dev/colabora/internal/models"
)

// scrypt cost parameters. Fixed for the system's lifetime: changing any of
// them invalidates verification of previously stored hashes.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

type PasswordManager struct{}

func NewPasswordManager() *PasswordManager {
	return &PasswordManager{}
}

// HashPassword derives a 64-byte scrypt key from the plaintext under a
// fresh random 16-byte salt. Both are returned hex-encoded so they fit the
// TEXT columns on User. The plaintext itself is never stored or logged.
func (m *PasswordManager) HashPassword(password string) (hash string, salt string, err error) {
	rawSalt := make([]byte, saltLen)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", err
	}

	key, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", "", err
	}

	return hex.EncodeToString(key), hex.EncodeToString(rawSalt), nil
}

// CheckPassword re-derives the hash with the user's stored salt and
// compares in constant time.
func (m *PasswordManager) CheckPassword(password string, user *models.User) bool {
	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		return false
	}

	stored, err := hex.DecodeString(user.Password)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(stored, key) == 1
}
