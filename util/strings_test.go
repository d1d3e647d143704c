package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"--verbos", "--verbose", 1},
		{"biuld", "build", 2},
		{"kitten", "sitting", 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevenshteinDistance(tc.a, tc.b), "distance(%q, %q)", tc.a, tc.b)
	}
}

func TestIsSimilar(t *testing.T) {
	assert.True(t, IsSimilar("--verbos", "--verbose"))
	assert.True(t, IsSimilar("biuld", "build"))
	assert.False(t, IsSimilar("--frobnicate", "--verbose"))
	assert.False(t, IsSimilar("-a", "-b"), "single-character flags should not suggest each other")
	assert.True(t, IsSimilar("-v", "-v"))
	assert.False(t, IsSimilar("add", "remove"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"-v", "--verbose"}, "--verbose"))
	assert.False(t, Contains([]string{"-v"}, "--verbose"))
	assert.False(t, Contains(nil, "-v"))
}
