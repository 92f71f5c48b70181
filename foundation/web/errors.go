package web

// Error carries an http status alongside the underlying cause so that
// handlers can respond with something better than a blanket 500.
type Error struct {
	Err    error
	Status int
	Fields []FieldError
}

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// IsRequestError reports whether err was created through NewRequestError.
func IsRequestError(err error) (*Error, bool) {
	re, ok := err.(*Error)
	return re, ok
}
