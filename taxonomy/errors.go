package taxonomy

import "errors"

// ErrLoadFailed indicates the definitions table could not be read or parsed.
var ErrLoadFailed = errors.New("taxonomy load failed")
