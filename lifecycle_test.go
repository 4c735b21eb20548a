package edn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseIsSafeToCallOnce(t *testing.T) {
	v, err := Read([]byte(`[1 2 3]`))
	require.Nil(t, err)
	assert.NotPanics(t, func() { Release(v) })
}

func TestReleaseNilIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() { Release(nil) })
}

func TestIntBigIntHashEqualInvariant(t *testing.T) {
	small, err := Read([]byte(`5`))
	require.Nil(t, err)
	big, err := Read([]byte(`5N`))
	require.Nil(t, err)

	require.True(t, ValueEqual(small, big))
	assert.Equal(t, ValueHash(small), ValueHash(big))
}

func TestRatioBigRatioHashEqualInvariant(t *testing.T) {
	opts := NewOptions(WithRatio(true))
	small, err := ReadWithOptions([]byte(`22/7`), opts)
	require.Nil(t, err)

	bigEquivalent := &Value{kind: KindBigRatio, bigRatioNum: "22", bigRatioDen: "7"}
	require.True(t, ValueEqual(small, bigEquivalent))
	assert.Equal(t, ValueHash(small), ValueHash(bigEquivalent))
}

func TestSetHashIgnoresElementOrder(t *testing.T) {
	a, err := Read([]byte(`#{1 2 3}`))
	require.Nil(t, err)
	b, err := Read([]byte(`#{3 1 2}`))
	require.Nil(t, err)
	assert.True(t, ValueEqual(a, b))
	assert.Equal(t, ValueHash(a), ValueHash(b))
}
