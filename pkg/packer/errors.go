package packer

import "errors"

var (
	// ErrEmptyFilePath is returned when the input path is empty or blank.
	ErrEmptyFilePath = errors.New("empty file path")
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrIO is returned when the input cannot be read.
	ErrIO = errors.New("input read failure")

	// ErrMalformedLine is returned when a line is not "<capacity> : <items>".
	ErrMalformedLine = errors.New("malformed line")
	// ErrTooManyItems is returned when a line holds more than MaxItems items.
	ErrTooManyItems = errors.New("too many items")
	// ErrMalformedItem is returned when an item group does not hold exactly three fields.
	ErrMalformedItem = errors.New("malformed item")

	// Field validation failures; the offending text is in Error.Raw.
	ErrInvalidWeightFormat = errors.New("invalid weight format")
	ErrNegativeWeight      = errors.New("negative weight")
	ErrInvalidCostFormat   = errors.New("invalid cost format")
	ErrNegativeCost        = errors.New("negative cost")
	ErrInvalidIndexFormat  = errors.New("invalid index format")
	ErrNegativeIndex       = errors.New("negative index")
)

// Error reports a failure while packing a file. Kind is one of the Err
// sentinels above and is matched by errors.Is; Raw holds the offending input
// text when there is one.
type Error struct {
	Kind error
	Msg  string
	Raw  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, raw, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Raw: raw}
}
