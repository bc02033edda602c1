package registry

// NextID allocates the next identifier for a collection: one more than the
// largest identifier currently present, or 1 for an empty collection. Pure
// function, no side effects; the caller stores the result on the entity
// being admitted.
func NextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}
