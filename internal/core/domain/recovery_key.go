package domain

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

// recoveryAlphabet excludes the ambiguous characters 0, O, 1 and I.
const recoveryAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	recoverySegments   = 4
	recoverySegmentLen = 4
	// RecoveryKeyLength is the formatted length, dashes included.
	RecoveryKeyLength = recoverySegments*recoverySegmentLen + recoverySegments - 1
)

var recoveryKeyPattern = regexp.MustCompile(`^[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`)

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)

// GenerateRecoveryKey returns a random key formatted as XXXX-XXXX-XXXX-XXXX.
func GenerateRecoveryKey() (string, error) {
	alphabetSize := big.NewInt(int64(len(recoveryAlphabet)))
	segments := make([]string, recoverySegments)
	for i := range segments {
		var b strings.Builder
		for j := 0; j < recoverySegmentLen; j++ {
			n, err := rand.Int(rand.Reader, alphabetSize)
			if err != nil {
				return "", err
			}
			b.WriteByte(recoveryAlphabet[n.Int64()])
		}
		segments[i] = b.String()
	}
	return strings.Join(segments, "-"), nil
}

// ValidRecoveryKeyFormat reports whether key is formatted as XXXX-XXXX-XXXX-XXXX.
func ValidRecoveryKeyFormat(key string) bool {
	return recoveryKeyPattern.MatchString(key)
}

// NormalizeRecoveryKey uppercases the key and strips everything but letters and digits.
func NormalizeRecoveryKey(key string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToUpper(key), "")
}

// FormatRecoveryKeyInput inserts dashes every four characters of user input,
// truncated to the formatted key length.
func FormatRecoveryKeyInput(input string) string {
	clean := NormalizeRecoveryKey(input)
	var segments []string
	for i := 0; i < len(clean); i += recoverySegmentLen {
		end := i + recoverySegmentLen
		if end > len(clean) {
			end = len(clean)
		}
		segments = append(segments, clean[i:end])
	}
	out := strings.Join(segments, "-")
	if len(out) > RecoveryKeyLength {
		out = out[:RecoveryKeyLength]
	}
	return out
}

// RecoveryKeysEqual compares two keys ignoring case and separators.
func RecoveryKeysEqual(a, b string) bool {
	return NormalizeRecoveryKey(a) == NormalizeRecoveryKey(b)
}
