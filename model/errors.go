package model

import "fmt"

// ValidationError covers the recoverable input failures: empty text on a
// post or comment, an out-of-set tag or location, or a submission blocked
// by an active moderation flag. The caller should keep its draft and show
// the message.
type ValidationError struct {
	Message string
	Err     error
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", ve.Message)
}

func (ve *ValidationError) Unwrap() error {
	return ve.Err
}

// NotFoundError means an operation referenced a post id absent from the
// snapshot it was applied to.
type NotFoundError struct {
	PostID string
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("post %v not found", nfe.PostID)
}
