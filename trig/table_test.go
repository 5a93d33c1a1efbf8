package trig_test

import (
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lutrig/assert"
	"github.com/oomph-ac/lutrig/tablegen"
	"github.com/oomph-ac/lutrig/trig"
	"github.com/stretchr/testify/require"
)

const size = 1000

func native32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func table32(t *testing.T, n int) trig.Table32 {
	t.Helper()
	samples, err := tablegen.Generate32(n)
	require.NoError(t, err)
	return trig.New32(samples)
}

func table64(t *testing.T, n int) trig.Table64 {
	t.Helper()
	samples, err := tablegen.Generate64(n)
	require.NoError(t, err)
	return trig.New64(samples)
}

func TestConstants(t *testing.T) {
	require.Equal(t, float32(math.Pi), trig.Half32)
	require.Equal(t, 2*trig.Quarter32, trig.Half32)
	require.Equal(t, 4*trig.Quarter32, trig.Full32)

	require.Equal(t, math.Pi, trig.Half64)
	require.Equal(t, 2*trig.Quarter64, trig.Half64)
	require.Equal(t, 4*trig.Quarter64, trig.Full64)
}

func TestTable32_Boundaries(t *testing.T) {
	table := table32(t, size)
	require.Equal(t, size, table.Len())

	require.Equal(t, float32(0), table.Sin(0))
	require.Equal(t, float32(1), table.Sin(trig.Quarter32))
	require.Equal(t, float32(0), table.Sin(trig.Half32))
	require.Equal(t, float32(-1), table.Sin(trig.Half32+trig.Quarter32))
	require.Equal(t, float32(0), table.Sin(trig.Full32))

	require.Equal(t, float32(-1), table.Sin(-trig.Quarter32))
	require.Equal(t, float32(0), table.Sin(-trig.Half32))
	require.Equal(t, float32(1), table.Sin(-trig.Half32-trig.Quarter32))
	require.Equal(t, float32(0), table.Sin(-trig.Full32))
}

func TestTable64_Boundaries(t *testing.T) {
	table := table64(t, size)

	require.Equal(t, 0.0, table.Sin(0))
	require.Equal(t, 1.0, table.Sin(trig.Quarter64))
	require.Equal(t, 0.0, table.Sin(trig.Half64))
	require.Equal(t, -1.0, table.Sin(trig.Half64+trig.Quarter64))
	require.Equal(t, 0.0, table.Sin(trig.Full64))

	require.Equal(t, -1.0, table.Sin(-trig.Quarter64))
	require.Equal(t, 0.0, table.Sin(-trig.Half64))
	require.Equal(t, 1.0, table.Sin(-trig.Half64-trig.Quarter64))
	require.Equal(t, 0.0, table.Sin(-trig.Full64))
}

func TestTable32_SamplePoints(t *testing.T) {
	table := table32(t, size)

	// In the first quadrant every angle lands exactly on a sample.
	for i := 0; i < size; i++ {
		radians := float32(i) / float32(4*size) * trig.Full32
		require.Equal(t, native32(radians), table.Sin(radians), "i=%d", i)
	}

	// Past the first quadrant the folded angle carries the rounding of the
	// fold, which costs a few ulps but never a whole sample.
	exact := 0
	for i := 0; i < 4*size; i++ {
		radians := float32(i) / float32(4*size) * trig.Full32
		got, want := table.Sin(radians), native32(radians)
		require.InDelta(t, want, got, 1e-5, "i=%d", i)
		if got == want {
			exact++
		}
	}
	t.Logf("%d of %d points agree bit for bit", exact, 4*size)
}

func TestTable64_SamplePoints(t *testing.T) {
	table := table64(t, size)

	for i := 0; i < size; i++ {
		radians := float64(i) / float64(4*size) * trig.Full64
		require.Equal(t, math.Sin(radians), table.Sin(radians), "i=%d", i)
	}
	for i := 0; i < 4*size; i++ {
		radians := float64(i) / float64(4*size) * trig.Full64
		require.InDelta(t, math.Sin(radians), table.Sin(radians), 1e-12, "i=%d", i)
	}
}

func TestTable32_Odd(t *testing.T) {
	table := table32(t, size)
	for i := 0; i < 4*size; i++ {
		radians := float32(i) / float32(4*size) * trig.Full32
		require.Equal(t, -table.Sin(radians), table.Sin(-radians), "i=%d", i)
	}
}

func TestTable64_Odd(t *testing.T) {
	table := table64(t, size)
	for i := 0; i < 4*size; i++ {
		radians := float64(i) / float64(4*size) * trig.Full64
		require.Equal(t, -table.Sin(radians), table.Sin(-radians), "i=%d", i)
	}
}

func TestTable32_Cos(t *testing.T) {
	table := table32(t, size)
	for i := -4 * size; i < 4*size; i++ {
		radians := float32(i) / float32(size) * trig.Quarter32
		require.Equal(t, table.Sin(radians+trig.Quarter32), table.Cos(radians), "i=%d", i)
		require.InDelta(t, math.Cos(float64(radians)), table.Cos(radians), 1e-5, "i=%d", i)
	}
	require.Equal(t, float32(1), table.Cos(0))
	require.Equal(t, float32(-1), table.Cos(trig.Half32))
}

func TestTable64_Cos(t *testing.T) {
	table := table64(t, size)
	for i := -4 * size; i < 4*size; i++ {
		radians := float64(i) / float64(size) * trig.Quarter64
		require.Equal(t, table.Sin(radians+trig.Quarter64), table.Cos(radians), "i=%d", i)
	}
	require.Equal(t, 1.0, table.Cos(0))
	require.Equal(t, -1.0, table.Cos(trig.Half64))
}

func TestTable32_LargeAngles(t *testing.T) {
	table := table32(t, size)
	bound := 2 * trig.Quarter32 / size

	for k := 0; k < 20000; k++ {
		radians := 1000 + float32(k)*0.37
		require.InDelta(t, native32(radians), table.Sin(radians), float64(bound), "radians=%v", radians)
		require.InDelta(t, native32(-radians), table.Sin(-radians), float64(bound), "radians=%v", -radians)
	}
}

func TestTable64_LargeAngles(t *testing.T) {
	table := table64(t, size)
	bound := trig.Quarter64 / size

	for k := 0; k < 20000; k++ {
		radians := 3000 + float64(k)*0.731
		require.InDelta(t, math.Sin(radians), table.Sin(radians), bound, "radians=%v", radians)
		require.InDelta(t, math.Sin(-radians), table.Sin(-radians), bound, "radians=%v", -radians)
	}
}

func TestTable32_Tan(t *testing.T) {
	table := table32(t, size)
	require.Equal(t, float32(0), table.Tan(0))
	require.InDelta(t, 1, table.Tan(trig.Quarter32/2), 1.0/size)
	require.InDelta(t, -1, table.Tan(-trig.Quarter32/2), 1.0/size)
}

func TestTable64_Tan(t *testing.T) {
	table := table64(t, size)
	require.Equal(t, 0.0, table.Tan(0))
	require.InDelta(t, 1, table.Tan(trig.Quarter64/2), 1.0/size)
	require.InDelta(t, math.Tan(1), table.Tan(1), 0.01)
}

func TestTable32_Sincos(t *testing.T) {
	table := table32(t, size)
	sin, cos := table.Sincos(1.25)
	require.Equal(t, table.Sin(1.25), sin)
	require.Equal(t, table.Cos(1.25), cos)
}

func TestSingleSample(t *testing.T) {
	table := table32(t, 1)
	require.Equal(t, float32(0), table.Sin(0))
	require.Equal(t, float32(1), table.Sin(trig.Quarter32))
	require.Equal(t, float32(-1), table.Sin(-trig.Quarter32))
	require.Equal(t, float32(1), table.Cos(0))
}

func TestEmptyTable(t *testing.T) {
	if !assert.Enabled {
		t.Skip("assertions are compiled out without the lutrigdebug tag")
	}
	require.Panics(t, func() { trig.New32(nil) })
	require.Panics(t, func() { trig.New64([]float64{}) })
}

func TestAbs(t *testing.T) {
	require.Equal(t, float32(1.5), trig.Abs32(-1.5))
	require.Equal(t, float32(1.5), trig.Abs32(1.5))
	require.False(t, math.Signbit(float64(trig.Abs32(float32(math.Copysign(0, -1))))))
	require.Equal(t, 2.25, trig.Abs64(-2.25))
	require.False(t, math.Signbit(trig.Abs64(math.Copysign(0, -1))))
}

func TestRem(t *testing.T) {
	require.Equal(t, float32(1), trig.Rem32(5, 2))
	require.Equal(t, float32(0), trig.Rem32(4, 2))
	require.Equal(t, float32(0.25), trig.Rem32(0.25, trig.Quarter32))
	require.Equal(t, 0.5, trig.Rem64(1000.5, 1))
	require.InDelta(t, 0.25, trig.Rem64(3*trig.Quarter64+0.25, trig.Quarter64), 1e-12)

	for k := 0; k < 1000; k++ {
		a := float64(k) * 7.3
		require.InDelta(t, math.Mod(a, trig.Quarter64), trig.Rem64(a, trig.Quarter64), 1e-9, "a=%v", a)
	}
}

func TestConcurrentUse(t *testing.T) {
	table := table32(t, size)

	var wg sync.WaitGroup
	results := make([][]float32, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 4*size; i++ {
				results[g] = append(results[g], table.Sin(float32(i)*0.01))
			}
		}()
	}
	wg.Wait()

	for g := 1; g < len(results); g++ {
		require.Equal(t, results[0], results[g])
	}
}

func TestDirection(t *testing.T) {
	t32 := table32(t, size)
	vec := t32.Direction(0, 0)
	require.InDelta(t, 0, vec.X(), 1e-6)
	require.InDelta(t, 0, vec.Y(), 1e-6)
	require.InDelta(t, 1, vec.Z(), 1e-6)

	vec = t32.Direction(90, 0)
	require.InDelta(t, -1, vec.X(), 1e-3)
	require.InDelta(t, 0, vec.Z(), 1e-3)

	vec = t32.Direction(0, 90)
	require.InDelta(t, -1, vec.Y(), 1e-3)

	t64 := table64(t, size)
	want := mgl64.Vec3{
		-math.Cos(mgl64.DegToRad(30)) * math.Sin(mgl64.DegToRad(45)),
		-math.Sin(mgl64.DegToRad(30)),
		math.Cos(mgl64.DegToRad(30)) * math.Cos(mgl64.DegToRad(45)),
	}
	got := t64.Direction(45, 30)
	for i := range want {
		require.InDelta(t, want[i], got[i], 2e-3, "component %d", i)
	}
}

func TestRotate(t *testing.T) {
	t32 := table32(t, size)
	got := t32.Rotate(mgl32.Vec2{1, 0}, trig.Quarter32)
	require.True(t, got.ApproxEqualThreshold(mgl32.Vec2{0, 1}, 1e-6), "got %v", got)

	t64 := table64(t, size)
	got64 := t64.Rotate(mgl64.Vec2{2, 0}, trig.Half64)
	require.True(t, got64.ApproxEqualThreshold(mgl64.Vec2{-2, 0}, 1e-9), "got %v", got64)
}
