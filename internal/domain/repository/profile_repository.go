package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrEmptyUserIDs is returned when BatchGetProfiles is invoked with no ids.
// Callers must skip the resolver entirely when there is nothing to resolve.
var ErrEmptyUserIDs = errors.New("batch profile lookup requires at least one user id")

// ProfileRepository resolves personalization attributes for many users in a
// single batched lookup, avoiding a per-recipient query storm.
type ProfileRepository interface {
	// BatchGetProfiles returns profiles keyed by user id. Ids absent from the
	// returned map simply have no profile; that is not an error. Must not be
	// called with an empty id list.
	BatchGetProfiles(ctx context.Context, userIDs []string) (map[string]*entity.UserProfile, error)
}
