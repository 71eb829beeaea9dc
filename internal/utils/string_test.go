package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSeparator(t *testing.T) {
	for _, r := range " -_~!@#%$^&*()[]{}/:;\"|,.?`" {
		assert.True(t, IsSeparator(r), "%q", r)
	}
	for _, r := range "a'Z0\t\nس+=<>\\" {
		assert.False(t, IsSeparator(r), "%q", r)
	}
}

func TestFormatConfidence(t *testing.T) {
	testCases := []struct {
		input       float64
		expected    string
		description string
	}{
		{1, "1.0", "One"},
		{0, "0.0", "Zero"},
		{0.5, "0.5", "Half"},
		{0.125, "0.125", "Shortest form"},
		{1.0 / 3.0, "0.3333333333333333", "Repeating"},
		{1e-7, "1e-07", "Exponent"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatConfidence(tc.input))
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatWithCommas(tc.input))
		})
	}
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
	assert.Empty(t, CreateRankList(0))
	assert.Empty(t, CreateRankList(-2))
}
