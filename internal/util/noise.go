package util

import (
	"github.com/aquilax/go-perlin"

	"github.com/annel0/vecmath/vec"
)

// Параметры шума по умолчанию
const (
	DefaultAlpha   = 2.0 // Сглаживание шума
	DefaultBeta    = 2.0 // Частота шума
	DefaultOctaves = 3   // Количество октав

	gradientStep = 1e-3
)

// NoiseField - скалярное поле шума Перлина на плоскости
type NoiseField struct {
	noise *perlin.Perlin
	scale float64
}

// NewNoiseField создает поле шума с указанными параметрами.
// scale масштабирует координаты перед выборкой; scale <= 0 заменяется на 1.
func NewNoiseField(seed int64, alpha, beta float64, octaves int32, scale float64) *NoiseField {
	if scale <= 0 {
		scale = 1
	}
	return &NoiseField{
		noise: perlin.NewPerlin(alpha, beta, octaves, seed),
		scale: scale,
	}
}

// NewDefaultNoiseField создает поле с параметрами по умолчанию
func NewDefaultNoiseField(seed int64) *NoiseField {
	return NewNoiseField(seed, DefaultAlpha, DefaultBeta, DefaultOctaves, 1)
}

// Sample возвращает значение шума в точке p (от 0 до 1)
func (f *NoiseField) Sample(p vec.DoubleVector2) float64 {
	s := p.MulScalar(f.scale)

	// Шум от -1 до 1, сумма октав может немного выходить за границы
	n := (f.noise.Noise2D(s.X, s.Y) + 1.0) / 2.0
	switch {
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}

// Gradient оценивает градиент поля центральной разностью
func (f *NoiseField) Gradient(p vec.DoubleVector2) vec.DoubleVector2 {
	dx := vec.DoubleRight.MulScalar(gradientStep)
	dy := vec.DoubleUp.MulScalar(gradientStep)

	g := vec.New(
		f.Sample(p.Add(dx))-f.Sample(p.Sub(dx)),
		f.Sample(p.Add(dy))-f.Sample(p.Sub(dy)),
	)
	return g.DivScalar(2 * gradientStep)
}

// FlowVector возвращает градиент, повернутый на 90° против часовой стрелки.
// Вдоль него значение поля локально не меняется.
func (f *NoiseField) FlowVector(p vec.DoubleVector2) vec.DoubleVector2 {
	g := f.Gradient(p)
	return vec.New(-g.Y, g.X)
}
