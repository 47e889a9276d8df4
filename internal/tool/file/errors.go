package file

import "errors"

// -- Sentinels --

var (
	ErrNotText = errors.New("file is not valid UTF-8 text")
)
