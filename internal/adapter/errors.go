// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized is returned when the API rejects the service-account
	// credential or the bearer token even after a re-login attempt.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the API answers 404 for the requested
	// resource.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUser is returned when registration of the service account
	// collides with an existing username.
	ErrDuplicateUser = errors.New("username already exists")
)

// mapHTTPError converts a non-2xx API response into a sentinel or descriptive
// error. Returns nil for successful responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrDuplicateUser
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode(), resp.String())
	}
}
