// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import "fmt"

// APIError represents a non-2xx response from the CMS.
type APIError struct {
	StatusCode int    // HTTP status code
	Status     string // HTTP status text (e.g. "Not Found")
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cms API error: %d %s", e.StatusCode, e.Status)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 404
}
