package models

import "time"

// EventReminder is a single notification offset attached to a calendar event.
type EventReminder struct {
	Method  string `json:"method"` // email or popup
	Minutes int    `json:"minutes"`
}

// EventPayload is the wire shape sent to the calendar sync endpoint.
// The backend upserts by task id, so create and update share this payload.
type EventPayload struct {
	RequestID   string          `json:"requestId"`
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	StartTime   time.Time       `json:"startTime"`
	EndTime     time.Time       `json:"endTime"`
	ColorID     string          `json:"colorId"`
	Reminders   []EventReminder `json:"reminders"`
}

// EventRef is the backend's reference to the created/updated calendar event.
type EventRef struct {
	EventID string `json:"eventId"`
}

// PermissionsResponse is the calendar permission probe result.
type PermissionsResponse struct {
	HasPermissions bool `json:"hasPermissions"`
}
