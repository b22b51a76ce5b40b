package physics

import (
	"github.com/annel0/vecmath/vec"
)

// BoxCollider представляет прямоугольный коллайдер на целочисленной сетке
type BoxCollider struct {
	Size vec.IntVector2 // Ширина и высота в клетках
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height int32) *BoxCollider {
	return &BoxCollider{Size: vec.New(width, height)}
}

// HalfExtents возвращает половину размеров (целочисленное деление)
func (bc *BoxCollider) HalfExtents() vec.IntVector2 {
	return bc.Size.DivScalar(2)
}

// IsPointInside проверяет, находится ли точка внутри коллайдера.
// Коробка полуоткрыта: [center-half, center+half) по каждой оси.
func (bc *BoxCollider) IsPointInside(center, point vec.IntVector2) bool {
	half := bc.HalfExtents()
	lo := center.Sub(half)
	hi := center.Add(half)

	return point.X >= lo.X && point.X < hi.X &&
		point.Y >= lo.Y && point.Y < hi.Y
}

// CheckBoxCollision проверяет строгое пересечение двух коллайдеров
func CheckBoxCollision(pos1 vec.IntVector2, collider1 *BoxCollider, pos2 vec.IntVector2, collider2 *BoxCollider) bool {
	h1, h2 := collider1.HalfExtents(), collider2.HalfExtents()

	// Разность считается в int64, чтобы не переполняться на краях int32
	return absDiff(pos1.X, pos2.X) < int64(h1.X)+int64(h2.X) &&
		absDiff(pos1.Y, pos2.Y) < int64(h1.Y)+int64(h2.Y)
}

// CollisionPoints возвращает точки для проверки коллизий с клетками.
// Для коллайдера 2x2 вернёт 4 угла и центр.
func CollisionPoints(center vec.IntVector2, collider *BoxCollider) []vec.IntVector2 {
	// Для коллайдера 1x1 вернём только центральную точку
	if collider.Size.X <= 1 && collider.Size.Y <= 1 {
		return []vec.IntVector2{center}
	}

	lo := center.Sub(collider.HalfExtents())
	hi := center.Add(collider.HalfExtents()).Sub(vec.IntOne)

	return []vec.IntVector2{
		lo,                  // Левый верхний
		vec.New(hi.X, lo.Y), // Правый верхний
		vec.New(lo.X, hi.Y), // Левый нижний
		hi,                  // Правый нижний
		center,              // Центр
	}
}

// CanMoveToPosition проверяет, может ли коллайдер переместиться в позицию.
// passable сообщает, проходима ли клетка.
func CanMoveToPosition(newPos vec.IntVector2, collider *BoxCollider, passable func(vec.IntVector2) bool) bool {
	for _, point := range CollisionPoints(newPos, collider) {
		if !passable(point) {
			return false
		}
	}
	return true
}

// Step переносит позицию на один шаг по направлению dir, если это возможно.
// dir снапится к сетке через AsInt, поэтому компоненты в (-1, 1) дают нулевой сдвиг.
func Step(pos vec.IntVector2, dir vec.DoubleVector2, collider *BoxCollider, passable func(vec.IntVector2) bool) (vec.IntVector2, bool) {
	next := pos.Add(dir.AsInt())
	if next == pos || !CanMoveToPosition(next, collider, passable) {
		return pos, false
	}
	return next, true
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}
