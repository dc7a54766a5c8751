package leads

import "errors"

var (
	// ErrMissingName is returned when the lead name is empty
	ErrMissingName = errors.New("name is required")

	// ErrMissingEmail is returned when the email is empty
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidEmail is returned when the email is not a parseable address
	ErrInvalidEmail = errors.New("email is not a valid address")

	// ErrMissingCompany is returned when the company is empty
	ErrMissingCompany = errors.New("company is required")

	// ErrMissingTitle is returned when the title is empty
	ErrMissingTitle = errors.New("title is required")

	// ErrMissingInquiry is returned when the inquiry message is empty
	ErrMissingInquiry = errors.New("inquiry message is required")

	// ErrShortInquiry is returned when the inquiry message is below the minimum length
	ErrShortInquiry = errors.New("inquiry message must be at least 8 characters")

	// ErrMissingChannel is returned when the source channel is empty
	ErrMissingChannel = errors.New("source channel is required")
)
