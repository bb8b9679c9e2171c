package pipeline

import "errors"

// ErrNotTrained indicates a predict call on a pipeline whose Fit has not
// completed successfully.
var ErrNotTrained = errors.New("pipeline is not trained")
