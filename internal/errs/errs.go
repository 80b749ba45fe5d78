package errs

import (
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrLoginAlreadyExists = errors.New("login already exists")
var ErrCredentialsNotSet = errors.New("ozon credentials not set")
var ErrInvalidCredentials = errors.New("ozon credentials rejected")
var ErrEmptyPostingList = errors.New("empty posting number list")

// RemoteError — отказ Ozon API: не-2xx ответ с разобранным или сырым телом.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *RemoteError) Error() string {
	if e.Code != "" || e.Message != "" {
		if e.Details != "" {
			return fmt.Sprintf("ozon api error (%s): %s %s", e.Code, e.Message, e.Details)
		}
		return fmt.Sprintf("ozon api error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("ozon api error: status %d", e.StatusCode)
}
