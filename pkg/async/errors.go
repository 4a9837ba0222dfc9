package async

import "errors"

var (
	ErrPoolClosed   = errors.New("async: pool is closed")
	ErrTaskPanicked = errors.New("async: task panicked")
)
