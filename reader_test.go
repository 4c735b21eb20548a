package edn

import (
	"math"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMapOfScalars(t *testing.T) {
	v, err := Read([]byte(`{:name "Alice" :age 30}`))
	require.Nil(t, err)
	require.Equal(t, KindMap, v.Kind())
	n, gerr := v.Count()
	require.NoError(t, gerr)
	assert.Equal(t, 2, n)

	nameKw := &Value{kind: KindKeyword, name: "name"}
	val, ok := v.Lookup(nameKw)
	require.True(t, ok)
	s, serr := val.StringGet()
	require.NoError(t, serr)
	assert.Equal(t, "Alice", s)
}

func TestReadSetRejectsDuplicate(t *testing.T) {
	_, err := Read([]byte(`#{1 2 1}`))
	require.NotNil(t, err)
	assert.Equal(t, ErrDuplicateElement, err.Kind)
}

func TestReadListUnterminated(t *testing.T) {
	_, err := Read([]byte(`(1 2 3`))
	require.NotNil(t, err)
	assert.Equal(t, ErrUnterminatedCollection, err.Kind)
}

func TestReadVectorUnmatchedDelimiter(t *testing.T) {
	_, err := Read([]byte(`[1 2 }`))
	require.NotNil(t, err)
	assert.Equal(t, ErrUnmatchedDelimiter, err.Kind)
	assert.Equal(t, Span{Start: 0, End: 6}, err.Span)
}

func TestReadNestedUnmatchedDelimiterBlamesInnermostOpener(t *testing.T) {
	_, err := Read([]byte(`[(1 2}]`))
	require.NotNil(t, err)
	assert.Equal(t, ErrUnmatchedDelimiter, err.Kind)
	assert.Equal(t, Span{Start: 1, End: 6}, err.Span)
}

func TestReadBigIntOverflow(t *testing.T) {
	v, err := Read([]byte(`9223372036854775808`))
	require.Nil(t, err)
	require.Equal(t, KindBigInt, v.Kind())
	digits, neg, radix, gerr := v.BigIntGet()
	require.NoError(t, gerr)
	assert.Equal(t, "9223372036854775808", digits)
	assert.False(t, neg)
	assert.EqualValues(t, 10, radix)
}

func TestReadRatio(t *testing.T) {
	opts := NewOptions(WithRatio(true))
	v, err := ReadWithOptions([]byte(`22/7`), opts)
	require.Nil(t, err)
	require.Equal(t, KindRatio, v.Kind())
	num, den, gerr := v.RatioGet()
	require.NoError(t, gerr)
	assert.EqualValues(t, 22, num)
	assert.EqualValues(t, 7, den)
}

func TestReadRatioPromotesToInt(t *testing.T) {
	opts := NewOptions(WithRatio(true))
	v, err := ReadWithOptions([]byte(`6/3`), opts)
	require.Nil(t, err)
	require.Equal(t, KindInt, v.Kind())
	n, _ := v.Int64Get()
	assert.EqualValues(t, 2, n)
}

func TestReadStringEscape(t *testing.T) {
	v, err := Read([]byte(`"hello\nworld"`))
	require.Nil(t, err)
	s, gerr := v.StringGet()
	require.NoError(t, gerr)
	assert.Equal(t, "hello\nworld", s)
}

func TestReadStringZeroCopy(t *testing.T) {
	src := []byte(`"plain"`)
	v, err := Read(src)
	require.Nil(t, err)
	s, _ := v.StringGet()
	assert.Equal(t, "plain", s)
	assert.True(t, unsafe.StringData(s) == &src[1], "escape-free string must alias the input buffer")
}

func TestReadUnknownTagPassthrough(t *testing.T) {
	v, err := Read([]byte(`#inst "2024-01-01"`))
	require.Nil(t, err)
	require.Equal(t, KindTagged, v.Kind())
	tag, inner, gerr := v.TaggedGet()
	require.NoError(t, gerr)
	assert.Equal(t, "inst", tag)
	s, _ := inner.StringGet()
	assert.Equal(t, "2024-01-01", s)
}

func TestReadMetadataAttachesToValue(t *testing.T) {
	opts := NewOptions(WithMetadata(true))
	v, err := ReadWithOptions([]byte(`^:private x`), opts)
	require.Nil(t, err)
	require.Equal(t, KindSymbol, v.Kind())
	meta := v.Meta()
	require.NotNil(t, meta)
	privateKw := &Value{kind: KindKeyword, name: "private"}
	got, ok := meta.Lookup(privateKw)
	require.True(t, ok)
	b, _ := got.BoolGet()
	assert.True(t, b)
}

func TestReadDiscard(t *testing.T) {
	v, err := Read([]byte(`[1 #_2 3]`))
	require.Nil(t, err)
	n, _ := v.Count()
	require.Equal(t, 2, n)
	e0, _ := v.Index(0)
	e1, _ := v.Index(1)
	n0, _ := e0.Int64Get()
	n1, _ := e1.Int64Get()
	assert.EqualValues(t, 1, n0)
	assert.EqualValues(t, 3, n1)
}

func TestReadDiscardBeforeVectorCloser(t *testing.T) {
	v, err := Read([]byte(`[1 2 #_3]`))
	require.Nil(t, err)
	require.Equal(t, KindVector, v.Kind())
	n, _ := v.Count()
	require.Equal(t, 2, n)
	e0, _ := v.Index(0)
	e1, _ := v.Index(1)
	n0, _ := e0.Int64Get()
	n1, _ := e1.Int64Get()
	assert.EqualValues(t, 1, n0)
	assert.EqualValues(t, 2, n1)
}

func TestReadDiscardBeforeMapCloser(t *testing.T) {
	v, err := Read([]byte(`{:a 1 #_2}`))
	require.Nil(t, err)
	require.Equal(t, KindMap, v.Kind())
	n, _ := v.Count()
	require.Equal(t, 1, n)
}

func TestReadDiscardBeforeSetCloser(t *testing.T) {
	v, err := Read([]byte(`#{1 2 #_3}`))
	require.Nil(t, err)
	require.Equal(t, KindSet, v.Kind())
	n, _ := v.Count()
	require.Equal(t, 2, n)
}

func TestReadTopLevelDiscardYieldsEOFSentinel(t *testing.T) {
	sentinel := &Value{kind: KindNil}
	opts := NewOptions(WithEOFValue(sentinel))
	v, err := ReadWithOptions([]byte(`#_1`), opts)
	require.Nil(t, err)
	assert.Same(t, sentinel, v)
}

func TestReadTopLevelDiscardErrorsWithoutEOFValue(t *testing.T) {
	_, err := Read([]byte(`#_1`))
	require.NotNil(t, err)
	assert.Equal(t, ErrUnexpectedEOF, err.Kind)
}

func TestReadMetadataOnScalarRejected(t *testing.T) {
	opts := NewOptions(WithMetadata(true))
	_, err := ReadWithOptions([]byte(`^:foo 42`), opts)
	require.NotNil(t, err)
	assert.Equal(t, ErrInvalidSyntax, err.Kind)
}

func TestReadOddMapEntriesRejected(t *testing.T) {
	_, err := Read([]byte(`{:a 1 :b}`))
	require.NotNil(t, err)
	assert.Equal(t, ErrInvalidSyntax, err.Kind)
}

func TestReadSpecialFloats(t *testing.T) {
	v, err := Read([]byte(`##NaN`))
	require.Nil(t, err)
	f, _ := v.DoubleGet()
	assert.True(t, math.IsNaN(f))

	v, err = Read([]byte(`##Inf`))
	require.Nil(t, err)
	f, _ = v.DoubleGet()
	assert.True(t, math.IsInf(f, 1))

	v, err = Read([]byte(`##-Inf`))
	require.Nil(t, err)
	f, _ = v.DoubleGet()
	assert.True(t, math.IsInf(f, -1))
}

func TestReadNaNNeverEqualsItself(t *testing.T) {
	a, _ := Read([]byte(`##NaN`))
	b, _ := Read([]byte(`##NaN`))
	assert.False(t, ValueEqual(a, a))
	assert.False(t, ValueEqual(a, b))
}

func TestReadInt64RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		v, err := Read([]byte(intLiteral(n)))
		require.Nil(t, err)
		got, gerr := v.Int64Get()
		require.NoError(t, gerr)
		assert.Equal(t, n, got)
	}
}

func intLiteral(n int64) string {
	if n == math.MinInt64 {
		return "-9223372036854775808"
	}
	s := ""
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		s = "0"
	}
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	if neg {
		s = "-" + s
	}
	return s
}

func TestReadEOFYieldsSentinel(t *testing.T) {
	eof := &Value{kind: KindKeyword, name: "eof"}
	opts := NewOptions(WithEOFValue(eof))
	v, err := ReadWithOptions([]byte(`   ; just a comment`), opts)
	require.Nil(t, err)
	assert.Same(t, eof, v)
}

func TestReadEOFErrorsByDefault(t *testing.T) {
	_, err := Read([]byte(``))
	require.NotNil(t, err)
	assert.Equal(t, ErrUnexpectedEOF, err.Kind)
}

func TestReadCustomTagReader(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterReader("double", func(inner *Value, ar *Arena) (*Value, error) {
		n, err := inner.Int64Get()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindInt, intVal: n * 2}, nil
	})
	opts := NewOptions(WithRegistry(reg))
	v, err := ReadWithOptions([]byte(`#double 21`), opts)
	require.Nil(t, err)
	n, _ := v.Int64Get()
	assert.EqualValues(t, 42, n)
}

func TestReadUnknownTagErrorPolicy(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterReader("known", func(inner *Value, ar *Arena) (*Value, error) { return inner, nil })
	opts := NewOptions(WithRegistry(reg), WithFallbackPolicy(FallbackError))
	_, err := ReadWithOptions([]byte(`#bogus 1`), opts)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnknownTag, err.Kind)
}

func TestVectorElementsMatchExpectedShape(t *testing.T) {
	v, err := Read([]byte(`[1 2 3]`))
	require.Nil(t, err)
	n, _ := v.Count()
	got := make([]int64, n)
	for i := 0; i < n; i++ {
		e, _ := v.Index(i)
		got[i], _ = e.Int64Get()
	}
	want := []int64{1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected vector contents (-want +got):\n%s", diff)
	}
}
