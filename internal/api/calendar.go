package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aitbekovm/grind/internal/models"
)

// isCalendarPath tells statusError to map 404/400 to "feature absent"
// for calendar endpoints instead of a hard BadRequestError.
func isCalendarPath(path string) bool {
	return strings.HasPrefix(path, "/calendar/")
}

// SyncTaskEvent calls POST /calendar/sync-task/{id}. The backend upserts
// the event keyed by task id, so create and update are the same call.
func (c *Client) SyncTaskEvent(ctx context.Context, taskID int64, payload models.EventPayload) (models.EventRef, error) {
	var ref models.EventRef
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/calendar/sync-task/%d", taskID), payload, &ref)
	if err != nil {
		return models.EventRef{}, err
	}
	return ref, nil
}

// DeleteTaskEvent calls DELETE /calendar/sync-task/{id}.
func (c *Client) DeleteTaskEvent(ctx context.Context, taskID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/calendar/sync-task/%d", taskID), nil, nil)
}

// CheckCalendarPermissions calls GET /calendar/permissions.
func (c *Client) CheckCalendarPermissions(ctx context.Context) (models.PermissionsResponse, error) {
	var resp models.PermissionsResponse
	if err := c.do(ctx, http.MethodGet, "/calendar/permissions", nil, &resp); err != nil {
		return models.PermissionsResponse{}, err
	}
	return resp, nil
}

// CalendarAuthURL is the backend route that starts the redirect-based
// authorization flow. The user opens it in a browser; completion lands
// on a backend callback outside this client.
func (c *Client) CalendarAuthURL() (string, error) {
	return c.resolve("/calendar/authorize")
}
