package opts

import (
	"github.com/walteh/karacopy/pkg/config"
	"github.com/walteh/karacopy/pkg/log"
	"github.com/walteh/karacopy/pkg/prompt"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config  *config.Config
	Console *log.Logger
	Confirm prompt.Confirmer
}
