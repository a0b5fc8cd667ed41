package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid principal is attached to the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
	// ErrPermissionNotFound is returned when a referenced permission does not exist.
	ErrPermissionNotFound = errors.New("permission not found")
	// ErrMineNotFound is returned when a mine is not found.
	ErrMineNotFound = errors.New("mine not found")
	// ErrSectorNotFound is returned when a sector is not found.
	ErrSectorNotFound = errors.New("sector not found")
	// ErrSensorNotFound is returned when a sensor is not found.
	ErrSensorNotFound = errors.New("sensor not found")
	// ErrMessageNotFound is returned when a message is not found or not visible to the caller.
	ErrMessageNotFound = errors.New("message not found")
	// ErrDuplicateRole is returned when creating a role whose name already exists.
	ErrDuplicateRole = errors.New("role name already exists")
	// ErrDuplicateEmail is returned when creating a user whose email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrLastProtectedUser is returned when deleting a user would leave a
	// protected role (e.g. admin) with no members.
	ErrLastProtectedUser = errors.New("cannot delete the last user of a protected role")
	// ErrRoleInUse is returned when deleting a role still assigned to users.
	ErrRoleInUse = errors.New("role is still assigned to users")
	// ErrRoleProtected is returned when deleting a protected role.
	ErrRoleProtected = errors.New("protected roles cannot be deleted")
	// ErrEmailNotVerified is returned on login before email verification completes.
	ErrEmailNotVerified = errors.New("email address not verified")
)

// MissingPermissionError is returned by the authorization gate when the
// principal lacks the required permission. The permission name is included
// in the message deliberately; this is an internal tool.
type MissingPermissionError struct {
	Permission string
}

func (e *MissingPermissionError) Error() string {
	return fmt.Sprintf("missing permission: %s", e.Permission)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors are
// flattened to a generic 500; the caller never sees internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	var missing *MissingPermissionError
	if errors.As(err, &missing) {
		return NewHTTPError(http.StatusForbidden, missing.Error(), "MISSING_PERMISSION")
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrPermissionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PERMISSION_NOT_FOUND")
	case errors.Is(err, ErrMineNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MINE_NOT_FOUND")
	case errors.Is(err, ErrSectorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SECTOR_NOT_FOUND")
	case errors.Is(err, ErrSensorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SENSOR_NOT_FOUND")
	case errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MESSAGE_NOT_FOUND")
	case errors.Is(err, ErrDuplicateRole):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_ROLE")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrLastProtectedUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "LAST_PROTECTED_USER")
	case errors.Is(err, ErrRoleInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROLE_IN_USE")
	case errors.Is(err, ErrRoleProtected):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROLE_PROTECTED")
	case errors.Is(err, ErrEmailNotVerified):
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMAIL_NOT_VERIFIED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
