package driving

import "context"

// SampleDataService loads demonstration data.
type SampleDataService interface {
	// Seed adds the demo family and its documents to an empty vault.
	// Reports whether anything was added.
	Seed(ctx context.Context) (bool, error)
}
