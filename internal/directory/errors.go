package directory

// BindError marks a bind rejected during the authentication step, as
// opposed to a transport fault while connecting or searching. The raw cause
// is preserved so callers can classify the directory's diagnostic.
type BindError struct {
	Err error
}

func (e *BindError) Error() string {
	return "bind rejected: " + e.Err.Error()
}

func (e *BindError) Unwrap() error {
	return e.Err
}
