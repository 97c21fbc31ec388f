package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Hello world", CapitalizeFirst("hello world"))
	assert.Equal(t, "Hello", CapitalizeFirst("Hello"))
	assert.Equal(t, "A", CapitalizeFirst("a"))
	assert.Equal(t, "", CapitalizeFirst(""))
	assert.Equal(t, "Über", CapitalizeFirst("über"))
	assert.Equal(t, "123abc", CapitalizeFirst("123abc"))
}

func TestCapitalizeSentences(t *testing.T) {
	assert.Equal(t, "One sentence", CapitalizeSentences("one sentence"))
	assert.Equal(t, "First. Second. Third", CapitalizeSentences("first. second. third"))
	assert.Equal(t, "", CapitalizeSentences(""))
	// Only ". " is a sentence delimiter, a bare dot is not.
	assert.Equal(t, "A.b", CapitalizeSentences("a.b"))
}
