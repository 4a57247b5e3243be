package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func noop(ctx huma.Context, next func(huma.Context)) { next(ctx) }

func TestContainer_GetAllAndClear(t *testing.T) {
	c := NewContainer()
	c.Add(noop)
	c.Add(noop)

	assert.Len(t, c.GetAllAndClear(), 2)
	assert.Empty(t, c.GetAllAndClear())
}

func TestWith_DoesNotShareBacking(t *testing.T) {
	base := make(huma.Middlewares, 1, 4)
	base[0] = noop

	a := With(base, noop)
	b := With(base, noop, noop)

	assert.Len(t, base, 1)
	assert.Len(t, a, 2)
	assert.Len(t, b, 3)
}
