// Package query rejects requests whose query string does not match an
// operation's declared parameters.
package query

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"
)

// Strict allows only the named parameters, each at most once and never empty.
func Strict(allowed ...string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		u := ctx.URL()
		for key, values := range u.Query() {
			var problem string
			switch {
			case !slices.Contains(allowed, key):
				problem = fmt.Sprintf("unexpected query parameter %q", key)
			case len(values) > 1:
				problem = fmt.Sprintf("query parameter %q given more than once", key)
			case values[0] == "":
				problem = fmt.Sprintf("query parameter %q must not be empty", key)
			}

			if problem != "" {
				reject(ctx, problem)
				return
			}
		}

		next(ctx)
	}
}

func reject(ctx huma.Context, msg string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusBadRequest)
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": msg})
}

// Supplied drops empty values. huma cannot tell an absent query parameter
// from an empty one, and Strict rejects empty ones before the handler runs,
// so what remains is exactly what the client sent.
func Supplied(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
