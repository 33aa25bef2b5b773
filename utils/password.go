package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"unicode"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// SuggestPassword returns a random password drawn from the full
// character set, for the "Suggest" helper on the sign-up form.
func SuggestPassword(length int) (string, error) {
	if length < 8 {
		return "", errors.New("password length must be at least 8 characters")
	}

	charset := lowercase + uppercase + digits + symbols
	password := make([]byte, length)
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[idx.Int64()]
	}
	return string(password), nil
}

// EvaluateStrength scores a password from 0 to 100 based on length and
// character diversity. Purely informational.
func EvaluateStrength(password string) int {
	if len(password) == 0 {
		return 0
	}

	score := 0
	switch {
	case len(password) >= 16:
		score += 40
	case len(password) >= 12:
		score += 30
	case len(password) >= 8:
		score += 20
	default:
		score += 10
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			hasSymbol = true
		}
	}

	types := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			types++
			score += 10
		}
	}

	switch types {
	case 2:
		score += 10
	case 3:
		score += 20
	case 4:
		score += 30
	}

	// Penalize runs of repeated characters.
	for i := 0; i < len(password)-1; i++ {
		if password[i] == password[i+1] {
			score -= 5
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
