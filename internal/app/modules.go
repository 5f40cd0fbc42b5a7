package app

import (
	"github.com/nfrund/bcard/internal/module"
	"github.com/nfrund/bcard/internal/modules/cards"
	"github.com/nfrund/bcard/internal/modules/profile"
	"github.com/nfrund/bcard/internal/modules/sandbox"
)

// NewModules returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		cards.New(),
		sandbox.New(),
		profile.New(),
	}
}
