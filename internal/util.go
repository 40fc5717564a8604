package internal

// Mask returns a value with the low nbit bits set.
// nbit must be in [1, 64].
func Mask(nbit int) uint64 {
	if nbit < 1 || nbit > 64 {
		panic("internal: mask width out of range")
	}
	if nbit == 64 {
		return ^uint64(0)
	}
	return 1<<uint(nbit) - 1
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
