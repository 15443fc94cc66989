package tokenizer

import "fmt"

// UnknownTagError is returned by AddRegex when the tag has no fingerprint
// code and none was supplied.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("tag %s doesn't exist; provide a fingerprint code to add it as a tag", e.Tag)
}

// DuplicateTagError is returned when registering a tag that already has a code.
type DuplicateTagError struct {
	Tag string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("tag %s already exists", e.Tag)
}

// DuplicateCodeError is returned when a fingerprint code is already bound to
// another tag.
type DuplicateCodeError struct {
	Code  string
	Owner string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("fingerprint code %q is already used by tag %s", e.Code, e.Owner)
}

// InvalidCodeError is returned when a fingerprint code is not exactly one character.
type InvalidCodeError struct {
	Tag  string
	Code string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("fingerprint code %q for tag %s must be a single character", e.Code, e.Tag)
}
