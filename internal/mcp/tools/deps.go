package tools

import (
	"context"

	"github.com/usestring/wetrace/internal/config"
	"github.com/usestring/wetrace/internal/query"
	"github.com/usestring/wetrace/internal/render"
	"github.com/usestring/wetrace/pkg/client"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Client *client.Client
	Config *config.Config
	Query  *query.Engine
}

// Shape applies the optional jq filter and compaction a tool caller asked for.
func (d *Deps) Shape(ctx context.Context, v any, jq string, compact bool) (any, error) {
	if jq != "" {
		out, err := d.Query.Run(ctx, jq, v)
		if err != nil {
			return nil, ErrInvalidInput(err.Error())
		}
		v = out
	}
	if compact {
		v = render.Compact(v, render.CompactOptions{
			MaxArrayItems: d.Config.CompactMaxArrayItems,
			MaxStringLen:  d.Config.CompactMaxStringLen,
			MaxDepth:      d.Config.CompactMaxDepth,
		})
	}
	return v, nil
}
