package repositories

import "errors"

// ErrNotFoundOrNotOwned is the single failure signal for ownership-scoped
// mutations. A row that does not exist, a row owned by another user and a
// row that was already soft-deleted all produce this error, so callers
// cannot tell the cases apart.
var ErrNotFoundOrNotOwned = errors.New("not found or not owned")
