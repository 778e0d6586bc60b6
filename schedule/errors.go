package schedule

import "errors"

// ErrScheduleCycle indicates a schedule that transitively references itself.
// Detected during preprocessing; a cyclic schedule cannot be evaluated.
var ErrScheduleCycle = errors.New("schedule: schedule references itself")
