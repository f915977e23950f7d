package web

// Error carries the HTTP status the failure should be reported with.
// Repositories and services wrap their failures into Error as close to the
// origin as possible so controllers only have to forward them.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewRequestError builds an Error for the given status.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}
