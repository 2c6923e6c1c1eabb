/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "fmt"

// Error is a string type that implements the error interface. The error kinds
// of this package are constants of this type and can be matched with errors.Is.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrSchemeMissing is returned when the input contains no ':' at all.
	ErrSchemeMissing Error = "scheme missing"
	// ErrEmptyRemainder is returned when a stage that needs input gets an empty string.
	ErrEmptyRemainder Error = "remaining URI is empty"
	// ErrPortNotNumeric is returned when the port is not a base-10 unsigned integer.
	ErrPortNotNumeric Error = "port is not numeric"
	// ErrFragmentMissing is returned when the fragment stage finds no '#'.
	ErrFragmentMissing Error = "fragment missing"
	// ErrUnexpectedRemainder is returned when a remainder does not start with
	// a delimiter the next stage can recognize.
	ErrUnexpectedRemainder Error = "unexpected remainder"
	// ErrNilComponents is returned when building from nil components.
	ErrNilComponents Error = "nil components"
)

// ParseError is the error type returned by the parsing functions of this package.
// Kind tells which rule was violated, Input holds the offending substring and
// Err the underlying diagnostic, if any.
type ParseError struct {
	Kind  Error
	Input string
	Err   error
}

// Error formats the kind with the offending input and the underlying error.
func (e *ParseError) Error() string {
	msg := "URI parse error: " + string(e.Kind)
	if e.Input != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Input)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying error to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// newParseError is a shorthand for a ParseError without an underlying error.
func newParseError(kind Error, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}

// BuildError is the error type returned by Build and BuildTo.
type BuildError struct {
	Component string
	Err       error
}

func (e *BuildError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("URI build error: %v", e.Err)
	}
	return fmt.Sprintf("URI build error: write %s: %v", e.Component, e.Err)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *BuildError) Unwrap() error {
	return e.Err
}
