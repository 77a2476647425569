package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

//
// ===========================================================
//  ENV UTILITIES
// ===========================================================
//

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

//
// ===========================================================
//  REFERENCE CODE GENERATORS
// ===========================================================
//

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferenceCode produces an A-Z0-9 code such as "AB4D93KF".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateReferenceCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference → "BK-XXXXXXXX". Falls back to a UUID suffix if
// the system's entropy source fails.
func GenerateBookingReference() (string, error) {
	raw, err := GenerateReferenceCode(8)
	if err != nil {
		raw = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	}
	return "BK-" + raw, nil
}

//
// ===========================================================
//  DATE HELPERS
// ===========================================================
//

// PtrTime returns pointer to time.Time
func PtrTime(t time.Time) *time.Time { return &t }

// PtrInt returns pointer to int
func PtrInt(n int) *int { return &n }

// ParseDate accepts "2006-01-02" or RFC3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
