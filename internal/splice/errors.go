package splice

import "errors"

var (
	// ErrAnchorNotFound is returned when the entry anchor does not start a
	// line of the target.
	ErrAnchorNotFound = errors.New("entry anchor not found")

	// ErrDelimiterNotFound is returned when the target has no closing delimiter.
	ErrDelimiterNotFound = errors.New("closing delimiter not found")

	// ErrAlreadySpliced is returned when the banner of the same series and
	// phase range is already present.
	ErrAlreadySpliced = errors.New("phase range already spliced")

	// ErrPostCondition is returned when the spliced text fails verification.
	ErrPostCondition = errors.New("splice post-condition failed")

	// ErrUnbalanced is returned when the registration function's braces do
	// not match.
	ErrUnbalanced = errors.New("unbalanced braces in registration function")
)
