package opts

import (
	"github.com/Sighe83/pricepatch/pkg/config"
	"github.com/Sighe83/pricepatch/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *status.UserLogger
}
