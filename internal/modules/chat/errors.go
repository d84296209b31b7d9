package chat

import "errors"

var (
	// ErrAccessDenied covers both a missing booking and a booking the acting
	// user is not a party to. Handlers answer 404 for either, so existence is
	// never confirmed to outsiders.
	ErrAccessDenied = errors.New("booking not found or access denied")

	ErrValidation = errors.New("booking ID, receiver ID, and message are required")
)
