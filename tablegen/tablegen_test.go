package tablegen

import (
	"math"
	"strconv"
	"testing"

	"github.com/oomph-ac/lutrig/trig"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	for in, want := range map[string]int{"1000": 1000, " 42\n": 42, "1": 1} {
		got, err := ParseSize(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "0", "-3", "abc", "1.5", "1_000", "1e3", "0x10"} {
		_, err := ParseSize(in)
		require.ErrorIs(t, err, ErrInvalidSize, in)
	}
}

func TestGenerate32(t *testing.T) {
	table, err := Generate32(1000)
	require.NoError(t, err)
	require.Len(t, table, 1000)

	require.Equal(t, float32(0), table[0])
	require.Less(t, table[len(table)-1], float32(1))
	for i := 1; i < len(table); i++ {
		require.LessOrEqual(t, table[i-1], table[i], "i=%d", i)
	}
	require.Equal(t, float32(math.Sqrt2/2), table[500])
}

func TestGenerate64(t *testing.T) {
	table, err := Generate64(1000)
	require.NoError(t, err)
	require.Len(t, table, 1000)

	require.Equal(t, 0.0, table[0])
	require.Less(t, table[len(table)-1], 1.0)
	for i := 1; i < len(table); i++ {
		require.LessOrEqual(t, table[i-1], table[i], "i=%d", i)
	}
	require.InDelta(t, math.Sqrt2/2, table[500], 1e-15)
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Generate32(n)
		require.ErrorIs(t, err, ErrInvalidSize)
		_, err = Generate64(n)
		require.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGenerateSmall(t *testing.T) {
	table, err := Generate32(1)
	require.NoError(t, err)
	require.Equal(t, []float32{0}, table)

	table64, err := Generate64(2)
	require.NoError(t, err)
	require.Equal(t, math.Sin(trig.Quarter64/2), table64[1])
}

func TestFormatRoundTrip(t *testing.T) {
	table32, err := Generate32(4096)
	require.NoError(t, err)
	for i, s := range Strings32(table32) {
		v, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err)
		require.Equal(t, math.Float32bits(table32[i]), math.Float32bits(float32(v)), "i=%d s=%s", i, s)
	}

	table64, err := Generate64(4096)
	require.NoError(t, err)
	for i, s := range Strings64(table64) {
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(table64[i]), math.Float64bits(v), "i=%d s=%s", i, s)
	}
}

func TestFormatShortest(t *testing.T) {
	require.Equal(t, "0", Format32(0))
	require.Equal(t, "0.1", Format32(0.1))
	require.Equal(t, "0.1", Format64(0.1))
	require.Equal(t, "0.70710677", Format32(float32(math.Sqrt2/2)))
}

func TestLiteral(t *testing.T) {
	table, err := Generate32(8)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "sin8_f32", []byte(Literal(Strings32(table), 4)))
}

func TestLiteralLayout(t *testing.T) {
	require.Equal(t, "", Literal(nil, 4))
	require.Equal(t, "\t1, 2, 3,\n", Literal([]string{"1", "2", "3"}, 8))
	require.Equal(t, "\t1, 2,\n\t3,\n", Literal([]string{"1", "2", "3"}, 2))
	require.Equal(t, "\t1,\n\t2,\n", Literal([]string{"1", "2"}, 0))
}

func TestParseWidth(t *testing.T) {
	for in, want := range map[string]Width{"32": Width32, "64": Width64, "float32": Width32, " float64 ": Width64} {
		got, err := ParseWidth(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "16", "float", "f32", "128"} {
		_, err := ParseWidth(in)
		require.ErrorIs(t, err, ErrInvalidWidth, in)
	}
	require.Equal(t, "float32", Width32.Type())
	require.Equal(t, "float64", Width64.String())
}

func TestChecksum(t *testing.T) {
	a, err := Generate32(1000)
	require.NoError(t, err)
	b, err := Generate32(1000)
	require.NoError(t, err)
	require.Equal(t, Checksum32(a), Checksum32(b))

	b[10] = math.Nextafter32(b[10], 1)
	require.NotEqual(t, Checksum32(a), Checksum32(b))

	c, err := Generate64(1000)
	require.NoError(t, err)
	d, err := Generate64(999)
	require.NoError(t, err)
	require.NotEqual(t, Checksum64(c), Checksum64(d))
}
