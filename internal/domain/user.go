package domain

// SocialLinks holds the member's public social media references.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// UserProfile is the denormalized snapshot of a church member as returned by
// the backend. The copy cached inside a session goes stale if the backend
// record changes elsewhere; there is no automatic refresh.
type UserProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Phone       string       `json:"phone,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Address     string       `json:"address,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
	BirthDate   string       `json:"birthDate,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	SectorIDs   []string     `json:"sectorIds,omitempty"`
	MinistryIDs []string     `json:"ministryIds,omitempty"`
}

// MemberInput is the payload for creating or updating a member.
type MemberInput struct {
	Name        string       `json:"name" validate:"required,min=2,max=120"`
	Email       string       `json:"email" validate:"required,email"`
	Role        string       `json:"role" validate:"required"`
	Phone       string       `json:"phone,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Address     string       `json:"address,omitempty"`
	BirthDate   string       `json:"birthDate,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// MemberAssignments is the payload for replacing a member's sector or ministry
// links. The backend treats the list as the complete new set, not a delta.
type MemberAssignments struct {
	IDs []string `json:"ids" validate:"required"`
}
