package nanoid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	number    = "0123456789"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// PrimaryKeyAlphabet is the alphabet of record ids
	PrimaryKeyAlphabet = number + lowercase + uppercase
	// PrimaryKeySize is the length of record ids
	PrimaryKeySize = 16
)

// PrimaryKey generates a record id
func PrimaryKey() string {
	return gonanoid.MustGenerate(PrimaryKeyAlphabet, PrimaryKeySize)
}

// Lower generates an id of size lowercase letters, 8 by default
func Lower(l ...int) string {
	size := 8
	if len(l) > 0 {
		size = l[0]
	}
	return gonanoid.MustGenerate(lowercase, size)
}

// IsPrimaryKey reports whether id looks like a PrimaryKey result
func IsPrimaryKey(id string) bool {
	if len(id) != PrimaryKeySize {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(PrimaryKeyAlphabet, r) {
			return false
		}
	}
	return true
}
