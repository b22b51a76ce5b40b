package vec

import "math"

// AsInt преобразует вектор в IntVector2.
// Дробная часть отбрасывается (округление к нулю). Значения вне диапазона
// int32 и ±Inf насыщаются до math.MinInt32/math.MaxInt32, NaN дает 0.
func (v Vector2[T]) AsInt() IntVector2 {
	return IntVector2{X: toInt32(v.X), Y: toInt32(v.Y)}
}

// AsFloat преобразует вектор в FloatVector2.
// float64 сужается до ближайшего float32 по IEEE-754.
func (v Vector2[T]) AsFloat() FloatVector2 {
	return FloatVector2{X: float32(v.X), Y: float32(v.Y)}
}

// AsDouble преобразует вектор в DoubleVector2 без потерь
func (v Vector2[T]) AsDouble() DoubleVector2 {
	return DoubleVector2{X: float64(v.X), Y: float64(v.Y)}
}

// toInt32 выполняет насыщающее приведение. Каждый допустимый T
// (int32, float32) представим в float64 точно, поэтому проверки идут через него.
func toInt32[T Scalar](c T) int32 {
	f := float64(c)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
