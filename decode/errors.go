package decode

import "errors"

// DecodeError reports a malformed raw directory record handed to one of the
// pure decoder functions: a missing attribute set, a binary value of the
// wrong length, a nil entry. These are data-integrity problems, not
// operational failures, so they are returned directly rather than folded
// into an operation result.
type DecodeError struct {
	Attribute string // attribute being decoded, if any
	Reason    string
}

func (e *DecodeError) Error() string {
	if e.Attribute == "" {
		return "decode: " + e.Reason
	}
	return "decode " + e.Attribute + ": " + e.Reason
}

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
