package numword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"five", 5},
		{"twelve", 12},
		{"eighty", 80},
		{"eighty five", 85},
		{"twenty-five", 25},
		{"nineteen eighty", 1980},
		{"thousand", 1000},
		{"two hundred", 200},
		{"ONE", 1},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRejectsNonNumerals(t *testing.T) {
	for _, in := range []string{"", "banana", "five bananas"} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eighty five years old", "85 years old"},
		{"he was twenty-one", "he was 21"},
		{"two thousand", "2 1000"},
		{"no numbers here", "no numbers here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Convert(tt.in), tt.in)
	}
}

func TestReplaceDecade(t *testing.T) {
	assert.Equal(t, "80s", ReplaceDecade("eighties"))
	assert.Equal(t, "20s", ReplaceDecade("Twenties"))
	assert.Equal(t, "eight", ReplaceDecade("eight"))
}

func TestSplit(t *testing.T) {
	assert.Equal(t,
		[]string{"on", " ", "12/25/2001", " ", "at", " ", "noon", "."},
		Split("on 12/25/2001 at noon."))
	assert.Equal(t,
		[]string{"May", " ", "5th"},
		Split("May 5th"))
}

func TestSplitFileName(t *testing.T) {
	assert.Equal(t,
		[]string{"hearing", " ", "2001-12-25"},
		SplitFileName("hearing 2001-12-25"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("State Prison of Ione", []string{"jail", "prison"}))
	assert.False(t, ContainsAny("City Hall", []string{"jail", "prison"}))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("042"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("4a"))
}
