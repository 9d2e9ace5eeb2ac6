package mcpsrv

import (
	"github.com/usestring/wetrace/internal/config"
	"github.com/usestring/wetrace/internal/query"
	"github.com/usestring/wetrace/pkg/client"
)

// Deps contains the dependencies available to custom tools.
type Deps struct {
	Client *client.Client
	Config *config.Config
	Query  *query.Engine
}
