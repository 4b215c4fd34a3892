package duration_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseSeconds_WithValidExpressions_ReturnsSeconds(t *testing.T) {
	cases := []struct {
		expression string
		expected   int64
	}{
		{"45s", 45},
		{"30m", 1800},
		{"1h", 3600},
		{"2d", 172800},
		{" 1h ", 3600},
		{"90m", 5400},
	}

	for _, c := range cases {
		seconds, err := ParseSeconds(c.expression)

		assert.NoError(t, err, "expression %q", c.expression)
		assert.Equal(t, c.expected, seconds, "expression %q", c.expression)
	}
}

func Test_ParseSeconds_WithInvalidExpressions_ReturnsError(t *testing.T) {
	cases := []string{
		"",
		"h",
		"1",
		"0m",
		"-5m",
		"banana",
		"1w",
		"1.5h",
		"h1",
		"10 m",
	}

	for _, expression := range cases {
		_, err := ParseSeconds(expression)

		assert.ErrorIs(t, err, ErrInvalidDuration, "expression %q", expression)
	}
}

func Test_ParseSeconds_WithHugeCount_ReturnsErrorInsteadOfWrapping(t *testing.T) {
	cases := []string{
		"999999999999999999d",
		"9223372036854775807s",
		"99999999999h",
		"36501d",
	}

	for _, expression := range cases {
		seconds, err := ParseSeconds(expression)

		assert.ErrorIs(t, err, ErrInvalidDuration, "expression %q", expression)
		assert.Zero(t, seconds, "expression %q", expression)
	}
}

func Test_ParseSeconds_AtHundredYearCap_ReturnsSeconds(t *testing.T) {
	seconds, err := ParseSeconds("36500d")

	assert.NoError(t, err)
	assert.Equal(t, int64(36500*86400), seconds)
}
