package command

import "context"

type Client interface {
	// HandleCommands consumes bot updates until ctx is cancelled.
	HandleCommands(ctx context.Context) error
}
