package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeAlphabet is the character set for PNRs and gift card codes
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomAlphanumeric generates a cryptographically random uppercase
// alphanumeric code of the given length
func RandomAlphanumeric(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
