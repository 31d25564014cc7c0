package helpers

import (
	"crypto/rand"
	"fmt"
)

// Password recovery code helpers

// KeyResetCode is the Redis key holding the recovery code for an email address
func KeyResetCode(email string) string {
	return "pwd:reset:code:" + email
}

// KeyResetVerified marks an email whose recovery code was confirmed
func KeyResetVerified(email string) string {
	return "pwd:reset:verified:" + email
}

// GenResetCode generates a secure random 6-digit code as a zero-padded string
func GenResetCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	// 6 digits: map random bytes to 000000-999999
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	code := n % 1000000
	return fmt.Sprintf("%06d", code), nil
}
