package driven

import "context"

// ChangeNotifier reports that stored data may have changed outside this process.
type ChangeNotifier interface {
	// Watch starts watching and returns a channel that receives one value per
	// burst of changes. The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
