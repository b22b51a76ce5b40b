package vec

// Zero возвращает нулевой вектор (0, 0)
func Zero[T Scalar]() Vector2[T] { return Splat[T](0) }

// One возвращает вектор (1, 1)
func One[T Scalar]() Vector2[T] { return Splat[T](1) }

// NegOne возвращает вектор (-1, -1)
func NegOne[T Scalar]() Vector2[T] { return Splat[T](-1) }

// Up - единичный вектор вдоль положительной оси Y
func Up[T Scalar]() Vector2[T] { return New[T](0, 1) }

// Down - единичный вектор вдоль отрицательной оси Y
func Down[T Scalar]() Vector2[T] { return New[T](0, -1) }

// Left - единичный вектор вдоль отрицательной оси X.
// Left и Right следуют задокументированным направлениям, а не таблице
// исходной библиотеки, где LEFT = (1, 0), а RIGHT = (0, 1) совпадал с UP.
func Left[T Scalar]() Vector2[T] { return New[T](-1, 0) }

// Right - единичный вектор вдоль положительной оси X (см. Left)
func Right[T Scalar]() Vector2[T] { return New[T](1, 0) }

// Готовые константы для каждого варианта
var (
	IntZero   = Zero[int32]()
	IntOne    = One[int32]()
	IntNegOne = NegOne[int32]()
	IntUp     = Up[int32]()
	IntDown   = Down[int32]()
	IntLeft   = Left[int32]()
	IntRight  = Right[int32]()

	FloatZero   = Zero[float32]()
	FloatOne    = One[float32]()
	FloatNegOne = NegOne[float32]()
	FloatUp     = Up[float32]()
	FloatDown   = Down[float32]()
	FloatLeft   = Left[float32]()
	FloatRight  = Right[float32]()

	DoubleZero   = Zero[float64]()
	DoubleOne    = One[float64]()
	DoubleNegOne = NegOne[float64]()
	DoubleUp     = Up[float64]()
	DoubleDown   = Down[float64]()
	DoubleLeft   = Left[float64]()
	DoubleRight  = Right[float64]()
)
