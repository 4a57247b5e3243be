package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects middlewares for the next group of operations.
type Container struct {
	items huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.items = append(c.items, mw)
}

// GetAllAndClear hands out the collected middlewares and resets the container.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.items
	c.items = nil
	return out
}

// With returns base followed by extra without touching base's backing array,
// so operations sharing base can each append their own middlewares.
func With(base huma.Middlewares, extra ...func(huma.Context, func(huma.Context))) huma.Middlewares {
	out := make(huma.Middlewares, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
