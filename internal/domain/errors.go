package domain

import "errors"

// ErrUnsafeFragment reports a captured fragment the CMD quoting rule
// cannot neutralize. It must be caught before the executor. A no-match or
// a declined confirmation is not an error; both are expressed as Outcome
// values and still produce a HistoryRecord.
var ErrUnsafeFragment = errors.New("fragment cannot be safely quoted")
