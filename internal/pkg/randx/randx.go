/*
Package randx provides functions for generating cryptographically secure random values.

It is used by the seeder to make generated handles unique and to pick from
fixed sets such as the role list.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// HandleSuffixLength is the number of Base62 characters appended by Handle.
	HandleSuffixLength = 6
)

// Intn returns a uniform random integer in [0, n) using crypto/rand.
func Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randx: invalid bound %d", n)
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %v", err)
	}
	return int(num.Int64()), nil
}

// Base62 generates a Base62 encoded string of the given length.
func Base62(length int) (string, error) {
	result := make([]byte, length)

	for i := range length {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for base62 string: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// IsBase62 reports whether s is non-empty and made only of Base62 characters.
func IsBase62(s string) bool {
	if s == "" {
		return false
	}

	for _, char := range s {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return true
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](items []T) (T, error) {
	var zero T

	i, err := Intn(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Handle returns prefix followed by "_" and HandleSuffixLength Base62 characters,
// e.g. "ana_x9Q2bT".
func Handle(prefix string) (string, error) {
	suffix, err := Base62(HandleSuffixLength)
	if err != nil {
		return "", err
	}
	return strings.ToLower(prefix) + "_" + suffix, nil
}
