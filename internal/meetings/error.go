package meetings

import (
	"errors"
	"fmt"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	ErrCodeOrganizerNotFound = "ORGANIZER_NOT_FOUND"
	ErrCodeMeetingNotFound   = "MEETING_NOT_FOUND"
	ErrCodeInvalidArgument   = "INVALID_ARGUMENT"
)

func NewOrganizerNotFoundError(email string) error {
	return &DomainError{
		Code:    ErrCodeOrganizerNotFound,
		Message: fmt.Sprintf("organizer not found: %s", email),
	}
}

func NewMeetingNotFoundError() error {
	return &DomainError{
		Code:    ErrCodeMeetingNotFound,
		Message: "meeting not found for the given link",
	}
}

func NewInvalidArgumentError(msg string) error {
	return &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: msg,
	}
}

// IsNotFound: 主催者・会議どちらかの解決失敗か
func IsNotFound(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == ErrCodeOrganizerNotFound || de.Code == ErrCodeMeetingNotFound
}
