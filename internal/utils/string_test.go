package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAccountID(t *testing.T) {
	assert.True(t, IsValidAccountID("507f1f77bcf86cd799439011"))
	assert.True(t, IsValidAccountID("AAAAAAAAAAAAAAAAAAAAAAAA"))

	assert.False(t, IsValidAccountID(""))
	assert.False(t, IsValidAccountID("507f1f77bcf86cd79943901"))   // 23 chars
	assert.False(t, IsValidAccountID("507f1f77bcf86cd7994390111")) // 25 chars
	assert.False(t, IsValidAccountID("507f1f77bcf86cd79943901g"))  // non-hex
	assert.False(t, IsValidAccountID(" 507f1f77bcf86cd79943901"))
}

func TestFilterAccountIDs(t *testing.T) {
	valid := "507f1f77bcf86cd799439011"

	assert.Equal(t, []string{valid}, FilterAccountIDs([]string{valid, "junk", ""}))
	assert.Equal(t, []string{}, FilterAccountIDs([]string{"junk", "more junk"}))
	assert.Equal(t, []string{}, FilterAccountIDs(nil))
}

func TestFilterBlankStrings(t *testing.T) {
	assert.Equal(t, []string{"https://x"}, FilterBlankStrings([]string{"", "  ", "https://x"}))
	// Order and duplicates are preserved
	assert.Equal(t, []string{"b", "a", "b"}, FilterBlankStrings([]string{"b", "\t", "a", "b"}))
	assert.Equal(t, []string{}, FilterBlankStrings(nil))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 50))
	assert.Equal(t, "exact", TruncateWithEllipsis("exact", 5))
	assert.Equal(t, "abcde...", TruncateWithEllipsis("abcdefgh", 5))
}
