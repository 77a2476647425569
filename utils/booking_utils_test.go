package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref, err := GenerateBookingReference()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(ref, "BK-"), "unexpected prefix: %s", ref)
		require.Len(t, ref, 11)
		for _, ch := range ref[3:] {
			require.Contains(t, referenceCharset, string(ch))
		}
		require.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestGenerateReferenceCodeRejectsBadLength(t *testing.T) {
	_, err := GenerateReferenceCode(0)
	require.Error(t, err)
	_, err = GenerateReferenceCode(-3)
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-01T10:30:00Z")
	require.NoError(t, err)
	require.Equal(t, 10, d.Hour())

	_, err = ParseDate("01/03/2024")
	require.Error(t, err)

	_, err = ParseDate("")
	require.Error(t, err)
}
