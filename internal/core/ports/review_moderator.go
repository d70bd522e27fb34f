package ports

import "context"

// ReviewModerator classifies review text. An error means the classifier could not
// give a verdict; callers must treat it as a rejection of the operation.
type ReviewModerator interface {
	IsSafe(ctx context.Context, text string) (bool, error)
}
