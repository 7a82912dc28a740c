package utils

// CycleEnumPtr steps an int-backed enum forward or backward, wrapping
// at the bounds [0, max].
func CycleEnumPtr[T ~int](current *T, direction int, max T) {
	*current = (*current + T(direction) + max + 1) % (max + 1)
}
