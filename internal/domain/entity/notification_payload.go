package entity

// Notification payload types
const (
	PayloadTypeProximity = "proximity"
	PayloadTypeTest      = "test"
)

// NotificationPayload is the JSON document delivered to a push endpoint.
type NotificationPayload struct {
	Title              string               `json:"title"`
	Body               string               `json:"body"`
	Icon               string               `json:"icon,omitempty"`
	Badge              string               `json:"badge,omitempty"`
	Tag                string               `json:"tag"`
	RequireInteraction bool                 `json:"requireInteraction,omitempty"`
	Actions            []NotificationAction `json:"actions,omitempty"`
	Data               NotificationData     `json:"data"`
}

// NotificationAction is a button shown with the notification.
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
}

// NotificationData carries routing hints for the client.
type NotificationData struct {
	Type         string   `json:"type"`
	ExperienceID string   `json:"experienceId,omitempty"`
	URL          string   `json:"url,omitempty"`
	Latitude     *float64 `json:"lat,omitempty"`
	Longitude    *float64 `json:"lon,omitempty"`
	Timestamp    int64    `json:"timestamp"` // Unix milliseconds.
}

// ReportCreatedEvent asks the dispatch worker to notify users near a new report.
type ReportCreatedEvent struct {
	RequestID    string   `json:"request_id,omitempty"`
	ExperienceID string   `json:"experience_id"`
	RadiusMeters *float64 `json:"radius_meters,omitempty"`
}
