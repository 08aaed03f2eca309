package errors

import "errors"

// ErrOptimisticLock means a conditional update matched zero rows because the
// record changed under us. Callers translate this into their own business
// error (e.g. a swap request that got matched by a concurrent volunteer).
var ErrOptimisticLock = errors.New("record was modified by another operation")
