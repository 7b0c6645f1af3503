package domain

// Sector is an organizational subdivision of the church (e.g. a neighborhood
// cell group). Members belong to zero or more sectors.
type Sector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
}

// SectorInput is the payload for creating or updating a sector.
type SectorInput struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
}

// Ministry is a service group within the church (worship, ushers, media, ...).
// Members belong to zero or more ministries.
type Ministry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
}

// MinistryInput is the payload for creating or updating a ministry.
type MinistryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
}
