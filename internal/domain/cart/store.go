package cart

import "context"

// Store is the durable per-session persistence of the cart line set.
// Save is called after every mutation and by Flush; Load once per Cart instance.
type Store interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}
