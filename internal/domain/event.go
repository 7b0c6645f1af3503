package domain

// Event is a church event shown on the public site and managed in the console.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartsAt    string `json:"startsAt"`
	EndsAt      string `json:"endsAt,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Published   bool   `json:"published"`
}

// EventInput is the payload for creating or updating an event.
type EventInput struct {
	Title       string `json:"title" validate:"required,min=2,max=160"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartsAt    string `json:"startsAt" validate:"required"`
	EndsAt      string `json:"endsAt,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Published   bool   `json:"published"`
}

// ServiceDay is a recurring weekly service slot (day of week + time + label),
// rendered on the public site's schedule section.
type ServiceDay struct {
	ID        string `json:"id"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Label     string `json:"label"`
}

// ServiceDayInput is the payload for creating or updating a service day.
type ServiceDayInput struct {
	Weekday   string `json:"weekday" validate:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime,omitempty"`
	Label     string `json:"label" validate:"required,min=2,max=120"`
}

// Sermon is a recorded or scheduled sermon listed on the public site.
type Sermon struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Preacher    string `json:"preacher"`
	Passage     string `json:"passage,omitempty"`
	PreachedAt  string `json:"preachedAt"`
	VideoURL    string `json:"videoUrl,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// SermonInput is the payload for creating or updating a sermon.
type SermonInput struct {
	Title       string `json:"title" validate:"required,min=2,max=160"`
	Preacher    string `json:"preacher" validate:"required,min=2,max=120"`
	Passage     string `json:"passage,omitempty"`
	PreachedAt  string `json:"preachedAt" validate:"required"`
	VideoURL    string `json:"videoUrl,omitempty" validate:"omitempty,url"`
	AudioURL    string `json:"audioUrl,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}
