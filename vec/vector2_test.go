package vec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runVectorSuite проверяет общие для всех вариантов свойства
func runVectorSuite[T Scalar](t *testing.T) {
	t.Run("New", func(t *testing.T) {
		assert.Equal(t, One[T](), New[T](1, 1))
		assert.Equal(t, Vector2[T]{X: 1, Y: 1}, One[T]())
	})

	t.Run("Splat", func(t *testing.T) {
		assert.Equal(t, Zero[T](), Splat[T](0))
		assert.Equal(t, New[T](4, 4), Splat[T](4))
		var zero Vector2[T]
		assert.Equal(t, Zero[T](), zero, "нулевое значение должно быть нулевым вектором")
	})

	t.Run("ArrayRoundTrip", func(t *testing.T) {
		v := New[T](1, 5)
		assert.Equal(t, [2]T{1, 5}, v.ToArray())
		assert.Equal(t, v, FromArray([2]T{1, 5}))

		for _, c := range []Vector2[T]{Zero[T](), NegOne[T](), New[T](-7, 12), New[T](100, -3)} {
			assert.Equal(t, c, FromArray(c.ToArray()))
		}
	})

	t.Run("Dot", func(t *testing.T) {
		assert.Equal(t, T(99), New[T](5, 8).Dot(New[T](7, 8)))
		assert.Equal(t, T(23), New[T](2, 3).Dot(New[T](4, 5)))
	})

	t.Run("Cross", func(t *testing.T) {
		assert.Equal(t, T(16), New[T](7, 8).Cross(New[T](5, 8)))
		assert.Equal(t, T(-2), New[T](2, 3).Cross(New[T](4, 5)))
		assert.Equal(t, T(1), Right[T]().Cross(Up[T]()), "X x Y должно давать +1")
	})

	t.Run("Length", func(t *testing.T) {
		assert.Equal(t, 5.0, New[T](3, 4).Length())
		assert.Equal(t, 0.0, Zero[T]().Length())
	})

	t.Run("Set", func(t *testing.T) {
		v := New[T](1, 2)
		c := v
		v.Set(2, 3)
		assert.Equal(t, New[T](2, 3), v)
		assert.Equal(t, New[T](1, 2), c, "копия не должна меняться")
	})

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, New[T](3, 3), One[T]().Add(Splat[T](2)))

		v := One[T]()
		v.AddAssign(Splat[T](9))
		assert.Equal(t, New[T](10, 10), v)

		a, b := New[T](4, -2), New[T](-1, 6)
		sum := a
		sum.AddAssign(b)
		assert.Equal(t, a.Add(b), sum, "+= должен совпадать с +")
		assert.Equal(t, New[T](4, -2), a)
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, NegOne[T](), Splat[T](2).Sub(Splat[T](3)))

		v := Splat[T](10)
		v.SubAssign(One[T]())
		assert.Equal(t, Splat[T](9), v)
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, Splat[T](4), Splat[T](2).Mul(Splat[T](2)))
		assert.Equal(t, Splat[T](30), Splat[T](5).MulScalar(6))

		v := Splat[T](2)
		v.MulAssign(Splat[T](3))
		assert.Equal(t, Splat[T](6), v)

		v = Splat[T](2)
		v.MulScalarAssign(2)
		assert.Equal(t, Splat[T](4), v)
	})

	t.Run("Div", func(t *testing.T) {
		assert.Equal(t, New[T](3, 2), New[T](6, 8).Div(New[T](2, 4)))
		assert.Equal(t, Splat[T](3), Splat[T](6).DivScalar(2))

		v := Splat[T](6)
		v.DivAssign(Splat[T](3))
		assert.Equal(t, Splat[T](2), v)

		v = Splat[T](6)
		v.DivScalarAssign(2)
		assert.Equal(t, Splat[T](3), v)
	})

	t.Run("Directions", func(t *testing.T) {
		dirs := []Vector2[T]{Up[T](), Down[T](), Left[T](), Right[T]()}
		for i := range dirs {
			assert.Equal(t, 1.0, dirs[i].Length())
			for j := i + 1; j < len(dirs); j++ {
				assert.NotEqual(t, dirs[i], dirs[j], "направления не должны совпадать")
			}
		}
		assert.Equal(t, Left[T](), Right[T]().MulScalar(-1))
		assert.Equal(t, Down[T](), Up[T]().MulScalar(-1))
		assert.Equal(t, T(0), Right[T]().Dot(Up[T]()))
	})
}

func TestIntVector2(t *testing.T) {
	runVectorSuite[int32](t)
}

func TestFloatVector2(t *testing.T) {
	runVectorSuite[float32](t)
}

func TestDoubleVector2(t *testing.T) {
	runVectorSuite[float64](t)
}

func TestPackageConstants(t *testing.T) {
	assert.Equal(t, IntVector2{X: 1, Y: 1}, IntOne)
	assert.Equal(t, FloatVector2{X: -1, Y: -1}, FloatNegOne)
	assert.Equal(t, DoubleVector2{X: 0, Y: -1}, DoubleDown)
	assert.Equal(t, IntVector2{X: 1, Y: 0}, IntRight)
	assert.Equal(t, DoubleVector2{X: -1, Y: 0}, DoubleLeft)
	assert.Equal(t, Splat[float32](0), FloatZero)
}

func TestIntVector2_DivByZeroPanics(t *testing.T) {
	const msg = "runtime error: integer divide by zero"

	assert.PanicsWithError(t, msg, func() {
		_ = IntOne.Div(IntZero)
	})
	assert.PanicsWithError(t, msg, func() {
		_ = IntOne.Div(New[int32](1, 0))
	})
	assert.PanicsWithError(t, msg, func() {
		_ = IntOne.DivScalar(0)
	})
	assert.PanicsWithError(t, msg, func() {
		v := IntOne
		v.DivAssign(IntZero)
	})
	assert.PanicsWithError(t, msg, func() {
		v := IntOne
		v.DivScalarAssign(0)
	})
}

func TestFloatVector2_DivByZero(t *testing.T) {
	inf := float32(math.Inf(1))

	assert.Equal(t, FloatVector2{X: 1, Y: inf}, FloatOne.Div(New[float32](1, 0)))
	assert.Equal(t, FloatVector2{X: inf, Y: inf}, FloatOne.DivScalar(0))

	v := New[float32](-1, 1)
	v.DivScalarAssign(0)
	assert.True(t, math.IsInf(float64(v.X), -1), "-1/0 должно давать -Inf")
	assert.True(t, math.IsInf(float64(v.Y), 1))

	nan := FloatZero.DivScalar(0)
	assert.True(t, math.IsNaN(float64(nan.X)))
	assert.True(t, math.IsNaN(float64(nan.Y)))
}

func TestDoubleVector2_DivByZero(t *testing.T) {
	inf := math.Inf(1)

	assert.Equal(t, DoubleVector2{X: 1, Y: inf}, DoubleOne.Div(New(1.0, 0.0)))
	assert.Equal(t, DoubleVector2{X: inf, Y: inf}, DoubleOne.DivScalar(0))

	v := DoubleOne
	v.DivAssign(DoubleZero)
	assert.Equal(t, DoubleVector2{X: inf, Y: inf}, v)

	nan := DoubleZero.Div(DoubleZero)
	assert.True(t, math.IsNaN(nan.X))
	assert.True(t, math.IsNaN(nan.Y))
	assert.True(t, math.IsNaN(nan.Length()), "NaN должен распространяться в длину")
}

func TestIntVector2_DotWraps(t *testing.T) {
	v := New[int32](math.MaxInt32, 0)
	assert.Equal(t, int32(-2), v.Dot(New[int32](2, 0)))
}

func TestIntVector2_LengthOverflow(t *testing.T) {
	// 46341^2 не помещается в int32
	assert.True(t, math.IsNaN(New[int32](46341, 0).Length()))
	assert.Equal(t, 46341.0, New[int32](46341, 0).AsDouble().Length())
}

func TestVector2_String(t *testing.T) {
	assert.Equal(t, "(1, -2)", New[int32](1, -2).String())
	assert.Equal(t, "(0.5, 1)", New(0.5, 1.0).String())

	require.Implements(t, (*fmt.Stringer)(nil), FloatOne)
}
