package directory

import (
	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
)

var Module = fx.Module("directory",
	fx.Provide(
		func(cfg *config.Config) *Directory {
			return New(cfg.Mailbox.Limit)
		},
	),
)
