package scoring

import "errors"

var (
	// ErrModelCall is returned when the provider call itself fails,
	// including timeouts
	ErrModelCall = errors.New("model call failed")

	// ErrMalformedReply is returned when no parseable JSON object can be
	// extracted from the model reply
	ErrMalformedReply = errors.New("model reply contained no valid JSON object")

	// ErrInvalidResult is returned when the parsed reply violates the
	// scoring contract
	ErrInvalidResult = errors.New("model returned an invalid score result")
)
