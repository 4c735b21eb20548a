package numlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64ValueFastPath(t *testing.T) {
	v, ok := Int64Value([]byte("12345"), 10, false)
	assert.True(t, ok)
	assert.EqualValues(t, 12345, v)

	v2, ok2 := Int64Value([]byte("12345"), 10, true)
	assert.True(t, ok2)
	assert.EqualValues(t, -12345, v2)
}

func TestInt64ValueOverflowFalls(t *testing.T) {
	_, ok := Int64Value([]byte("9223372036854775808"), 10, false)
	assert.False(t, ok)
}

func TestInt64ValueMinInt64Boundary(t *testing.T) {
	// math.MinInt64's magnitude is one past math.MaxInt64 and is only
	// representable with the sign applied; the negative path must accept
	// it while the positive path (above) must still reject it.
	v, ok := Int64Value([]byte("9223372036854775808"), 10, true)
	assert.True(t, ok)
	assert.EqualValues(t, -9223372036854775808, v)

	_, ok2 := Int64Value([]byte("9223372036854775809"), 10, true)
	assert.False(t, ok2)
}

func TestInt64ValueHex(t *testing.T) {
	v, ok := Int64Value([]byte("FF"), 16, false)
	assert.True(t, ok)
	assert.EqualValues(t, 255, v)
}

func TestInt64ValueRadix36(t *testing.T) {
	v, ok := Int64Value([]byte("ZZ"), 36, false)
	assert.True(t, ok)
	assert.EqualValues(t, 35*36+35, v)
}

func TestBigIntDigitsStripsUnderscores(t *testing.T) {
	assert.Equal(t, "1000000", BigIntDigits([]byte("1_000_000")))
}

func TestFloat64Value(t *testing.T) {
	v, err := Float64Value([]byte("3.14"))
	assert.NoError(t, err)
	assert.InDelta(t, 3.14, v, 1e-9)
}

func TestReduceRatioLowestTerms(t *testing.T) {
	n, d, ok := ReduceRatio(22, 7)
	assert.True(t, ok)
	assert.EqualValues(t, 22, n)
	assert.EqualValues(t, 7, d)
}

func TestReduceRatioReducible(t *testing.T) {
	n, d, ok := ReduceRatio(4, 8)
	assert.True(t, ok)
	assert.EqualValues(t, 1, n)
	assert.EqualValues(t, 2, d)
}

func TestReduceRatioPromotesToInt(t *testing.T) {
	n, d, ok := ReduceRatio(6, 3)
	assert.True(t, ok)
	assert.EqualValues(t, 2, n)
	assert.EqualValues(t, 1, d)
}

func TestReduceRatioZeroNumerator(t *testing.T) {
	n, d, ok := ReduceRatio(0, 5)
	assert.True(t, ok)
	assert.EqualValues(t, 0, n)
	assert.EqualValues(t, 1, d)
}

func TestReduceRatioRejectsNonPositiveDenominator(t *testing.T) {
	_, _, ok := ReduceRatio(1, 0)
	assert.False(t, ok)
	_, _, ok2 := ReduceRatio(1, -3)
	assert.False(t, ok2)
}

func TestReduceRatioNegativeNumerator(t *testing.T) {
	n, d, ok := ReduceRatio(-4, 8)
	assert.True(t, ok)
	assert.EqualValues(t, -1, n)
	assert.EqualValues(t, 2, d)
}
