package advisor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	assert.Equal(t, truncate("short", 10), "short")
}

func TestTruncate_LongStringCut(t *testing.T) {
	got := truncate("abcdefghij", 4)
	assert.Equal(t, got, "abcd...")
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncate(s, 4)

	assert.Equal(t, got, "éééé...")
	assert.Equal(t, utf8.ValidString(got), true)
}

func TestFmtMoney(t *testing.T) {
	assert.Equal(t, fmtMoney(0), "N/A")
	assert.Equal(t, fmtMoney(190.5), "$190.50")
}
