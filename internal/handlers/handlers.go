// Package handlers contains the HTTP boundary: thin JSON CRUD
// handlers over the store interfaces. All business rules live below;
// this layer only decodes, validates required fields, and hands store
// failures to httpx for status mapping.
package handlers

import (
	"net/http"
	"strconv"
)

// pathID parses the {id} path segment. A non-numeric id is a client
// error, not a lookup miss.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
