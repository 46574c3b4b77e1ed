package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strconv"
)

// GenerateOTP returns a 6-digit one-time code in [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// RandomHex returns n random bytes, hex encoded. Used for invitation ids
// and email verification tokens.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
