package fx

import (
	"github.com/orgball2608/threads-parser-telegram-bot/internal/repositories/searchpost"
	"go.uber.org/fx"
)

var Module = fx.Options(
	searchpost.Module,
)
