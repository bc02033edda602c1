package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type thing struct{ id int }

func TestNextID(t *testing.T) {
	ident := func(x thing) int { return x.id }

	t.Run("empty collection starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, NextID(nil, ident))
		assert.Equal(t, 1, NextID([]thing{}, ident))
	})

	t.Run("returns max plus one", func(t *testing.T) {
		items := []thing{{id: 3}, {id: 1}, {id: 7}, {id: 2}}
		assert.Equal(t, 8, NextID(items, ident))
	})

	t.Run("gaps from removals are not refilled", func(t *testing.T) {
		// ids 2 and 4 were removed at some point; the allocator keeps counting
		// from the maximum instead of reusing the holes.
		items := []thing{{id: 1}, {id: 3}, {id: 5}}
		assert.Equal(t, 6, NextID(items, ident))
	})
}
