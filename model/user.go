package model

// PublicUser is the public profile of any user.
type PublicUser struct {
	DisplayName  string       `json:"display_name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers,omitempty"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images,omitempty"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// User is the current user's profile. Country, email and product require
// the user-read-private / user-read-email scopes and are empty otherwise.
type User struct {
	PublicUser

	Country         string           `json:"country,omitempty"`
	Email           string           `json:"email,omitempty"`
	ExplicitContent *ExplicitContent `json:"explicit_content,omitempty"`
	Product         string           `json:"product,omitempty"`
}

// ExplicitContent is the user's explicit-content settings.
type ExplicitContent struct {
	FilterEnabled bool `json:"filter_enabled"`
	FilterLocked  bool `json:"filter_locked"`
}
