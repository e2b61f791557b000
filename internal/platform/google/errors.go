package google

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from a platform API, carrying the decoded
// googleapis error envelope.
type APIError struct {
	HTTPStatus int
	Code       int
	Status     string // canonical status, e.g. "ALREADY_EXISTS"
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API error %d (%s): %s", e.HTTPStatus, e.Status, e.Message)
}

// ErrAlreadyExists marks a create call whose target resource is already
// present. Callers that treat existing resources as success match on this.
var ErrAlreadyExists = errors.New("resource already exists")

// codeAlreadyExists is the canonical status code carried by operation
// error payloads.
const codeAlreadyExists = 6

// IsAlreadyExists reports whether err indicates the resource being created
// is already present. Covers the synchronous rejection (HTTP 409 on the
// create call) and the asynchronous one (an operation that polls to
// completion with an ALREADY_EXISTS payload).
func IsAlreadyExists(err error) bool {
	if errors.Is(err, ErrAlreadyExists) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus == http.StatusConflict || apiErr.Status == "ALREADY_EXISTS"
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Status.Status == "ALREADY_EXISTS" || opErr.Status.Code == codeAlreadyExists
	}
	return false
}

// IsCollision reports whether a project create was rejected because the
// chosen identifier collides with an existing project.
func IsCollision(err error) bool {
	return IsAlreadyExists(err)
}
