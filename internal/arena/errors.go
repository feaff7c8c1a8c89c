package arena

import "errors"

// ErrUseAfterDestroy is returned by Alloc once Destroy has been called.
var ErrUseAfterDestroy = errors.New("arena: use after destroy")

// ErrInvalidSize is returned by Alloc for a non-positive size request.
var ErrInvalidSize = errors.New("arena: size must be positive")
