package domain

// Settings holds church-wide configuration edited in the console and partially
// exposed on the public site (name, address, contact, social links).
type Settings struct {
	ChurchName  string       `json:"churchName"`
	Tagline     string       `json:"tagline,omitempty"`
	Address     string       `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Email       string       `json:"email,omitempty"`
	LogoURL     string       `json:"logoUrl,omitempty"`
	AboutText   string       `json:"aboutText,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// SettingsInput is the payload for updating church settings.
type SettingsInput struct {
	ChurchName  string       `json:"churchName" validate:"required,min=2,max=160"`
	Tagline     string       `json:"tagline,omitempty"`
	Address     string       `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Email       string       `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL     string       `json:"logoUrl,omitempty" validate:"omitempty,url"`
	AboutText   string       `json:"aboutText,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}
