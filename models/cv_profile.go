package models

import "time"

// CVProfile is a structured consultant CV. The nested sections are stored
// as JSONB documents; their shape follows the CV editor's export format.
type CVProfile struct {
	ProfileID int64 `json:"profile_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// Title labels the profile variant (e.g. "Frontend focus", "English").
	Title string `json:"title"`

	PersonalInfo CVPersonalInfo `json:"personal_info"`
	Summary      CVSummary      `json:"summary"`
	Experience   []CVExperience `json:"experience"`
	Skills       []CVSkillGroup `json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the CVProfile model.
func (p CVProfile) TableName() string {
	return "cv_profiles"
}

// CVPersonalInfo is the contact header of a CV.
type CVPersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// CVSummary is the profile introduction section.
type CVSummary struct {
	Introduction    string   `json:"introduction"`
	KeyStrengths    []string `json:"keyStrengths,omitempty"`
	CareerObjective string   `json:"careerObjective,omitempty"`
}

// CVExperience is one engagement in the work-experience section.
type CVExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Period       string   `json:"period"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// CVSkillGroup groups related skills under a category label.
type CVSkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}
