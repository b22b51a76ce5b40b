package vec

import (
	"fmt"
	"math"
)

// Scalar ограничивает типы компонент вектора
type Scalar interface {
	~int32 | ~float32 | ~float64
}

// Vector2 представляет двумерный вектор с компонентами типа T.
// Нулевое значение - нулевой вектор. Сравнение через == покомпонентное и точное.
type Vector2[T Scalar] struct {
	X, Y T
}

// IntVector2 - вектор с целочисленными компонентами
type IntVector2 = Vector2[int32]

// FloatVector2 - вектор с компонентами float32
type FloatVector2 = Vector2[float32]

// DoubleVector2 - вектор с компонентами float64
type DoubleVector2 = Vector2[float64]

// New создает вектор из двух компонент без каких-либо проверок
func New[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Splat создает вектор, у которого обе компоненты равны v
func Splat[T Scalar](v T) Vector2[T] {
	return New(v, v)
}

// FromArray создает вектор из массива [x, y]
func FromArray[T Scalar](arr [2]T) Vector2[T] {
	return New(arr[0], arr[1])
}

// ToArray возвращает компоненты вектора в виде массива [x, y]
func (v Vector2[T]) ToArray() [2]T {
	return [2]T{v.X, v.Y}
}

// Set заменяет обе компоненты вектора
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// Add складывает два вектора
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul умножает векторы покомпонентно
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * other.X, Y: v.Y * other.Y}
}

// MulScalar умножает вектор на скаляр
func (v Vector2[T]) MulScalar(scalar T) Vector2[T] {
	return Vector2[T]{X: v.X * scalar, Y: v.Y * scalar}
}

// Div делит векторы покомпонентно.
// Для IntVector2 нулевая компонента делителя вызывает панику
// "runtime error: integer divide by zero". Для вещественных вариантов
// результат следует IEEE-754: ±Inf или NaN.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X / other.X, Y: v.Y / other.Y}
}

// DivScalar делит вектор на скаляр. Поведение при нуле такое же, как у Div.
func (v Vector2[T]) DivScalar(scalar T) Vector2[T] {
	return Vector2[T]{X: v.X / scalar, Y: v.Y / scalar}
}

// AddAssign прибавляет вектор на месте
func (v *Vector2[T]) AddAssign(other Vector2[T]) {
	v.X += other.X
	v.Y += other.Y
}

// SubAssign вычитает вектор на месте
func (v *Vector2[T]) SubAssign(other Vector2[T]) {
	v.X -= other.X
	v.Y -= other.Y
}

// MulAssign умножает покомпонентно на месте
func (v *Vector2[T]) MulAssign(other Vector2[T]) {
	v.X *= other.X
	v.Y *= other.Y
}

// MulScalarAssign умножает на скаляр на месте
func (v *Vector2[T]) MulScalarAssign(scalar T) {
	v.X *= scalar
	v.Y *= scalar
}

// DivAssign делит покомпонентно на месте.
// Если у IntVector2 паникует деление Y, X уже обновлен.
func (v *Vector2[T]) DivAssign(other Vector2[T]) {
	v.X /= other.X
	v.Y /= other.Y
}

// DivScalarAssign делит на скаляр на месте
func (v *Vector2[T]) DivScalarAssign(scalar T) {
	v.X /= scalar
	v.Y /= scalar
}

// Dot возвращает скалярное произведение в арифметике типа T
// (для int32 переполнение не проверяется)
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross возвращает двумерное векторное произведение x1*y2 - y1*x2,
// то есть ориентированную площадь параллелограмма
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// Length возвращает длину вектора. Dot(v, v) расширяется до float64 перед корнем.
// Для IntVector2 переполнение int32 в Dot может дать отрицательное значение и NaN.
func (v Vector2[T]) Length() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// String реализует fmt.Stringer
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
