package gcb

// BetterPoint is image.Point but better
type BetterPoint[PointType ~float32] struct {
	X, Y PointType
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X + other.X, b.Y + other.Y}
}

func (b BetterPoint[T]) Mul(scalar T) BetterPoint[T] {
	return BetterPoint[T]{b.X * scalar, b.Y * scalar}
}

func BetterPt[T ~float32](x, y T) BetterPoint[T] {
	return BetterPoint[T]{x, y}
}

func Redefine[T2, T1 ~float32](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}

// Optional is a value that may not have been given yet.
// The zero value is unset, which is different from a set zero.
type Optional[T ~float32] struct {
	value T
	set   bool
}

// Some returns a set Optional holding v.
func Some[T ~float32](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether o holds a value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value or def if unset.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}

	return o.value
}

// Shift adds delta to a set value. Unset values stay unset.
func (o Optional[T]) Shift(delta T) Optional[T] {
	if !o.set {
		return o
	}

	return Some(o.value + delta)
}
