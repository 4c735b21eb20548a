package strlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterNamed(t *testing.T) {
	r, n, err := Character([]byte("newline"), CharFeatures{})
	require.NoError(t, err)
	assert.Equal(t, '\n', r)
	assert.Equal(t, 7, n)
}

func TestCharacterNamedExtensionGated(t *testing.T) {
	_, _, err := Character([]byte("formfeed"), CharFeatures{})
	assert.Error(t, err)

	r, n, err := Character([]byte("formfeed"), CharFeatures{NamedExtended: true})
	require.NoError(t, err)
	assert.Equal(t, '\f', r)
	assert.Equal(t, 8, n)
}

func TestCharacterUnicode(t *testing.T) {
	r, n, err := Character([]byte("u0041"), CharFeatures{})
	require.NoError(t, err)
	assert.Equal(t, 'A', r)
	assert.Equal(t, 5, n)
}

func TestCharacterUnicodeRejectsSurrogate(t *testing.T) {
	_, _, err := Character([]byte("uD800"), CharFeatures{})
	assert.Error(t, err)
}

func TestCharacterOctal(t *testing.T) {
	r, n, err := Character([]byte("o101"), CharFeatures{Octal: true})
	require.NoError(t, err)
	assert.Equal(t, rune(0o101), r)
	assert.Equal(t, 4, n)
}

func TestCharacterLoneOIsTheLetterO(t *testing.T) {
	r, n, err := Character([]byte("o"), CharFeatures{Octal: true})
	require.NoError(t, err)
	assert.Equal(t, 'o', r)
	assert.Equal(t, 1, n)
}

func TestCharacterOctalOverflowRejected(t *testing.T) {
	_, _, err := Character([]byte("o777"), CharFeatures{Octal: true})
	// 0o777 = 511 > 0o377 = 255
	assert.Error(t, err)
}

func TestCharacterRawRune(t *testing.T) {
	r, n, err := Character([]byte("x"), CharFeatures{})
	require.NoError(t, err)
	assert.Equal(t, 'x', r)
	assert.Equal(t, 1, n)
}

func TestCharacterRejectsWhitespace(t *testing.T) {
	_, _, err := Character([]byte(" "), CharFeatures{})
	assert.Error(t, err)
}

func TestCharacterRejectsEmpty(t *testing.T) {
	_, _, err := Character(nil, CharFeatures{})
	assert.Error(t, err)
}
