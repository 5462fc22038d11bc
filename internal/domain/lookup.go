package domain

// Category is a lookup row activities are grouped under
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name"`
	IsActive    bool    `json:"is_active"`
}

// Tag is a free-form label lookup row
type Tag struct {
	ID          int64   `json:"id"`
	Key         string  `json:"key"`
	DisplayName *string `json:"display_name"`
	IsActive    bool    `json:"is_active"`
}

// PitchStatus is a lookup row for the comms pitch workflow state
type PitchStatus struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// SchedulingStatus is a lookup row for the scheduling workflow state
type SchedulingStatus struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// TagRef is the resolved tag shape surfaced on an activity response.
// Text is the tag's display name when present, else its key.
type TagRef struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
