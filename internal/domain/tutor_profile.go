package domain

// TutorProfile extends a tutor user with marketplace fields.
// HourlyRate of 0 means the tutor has not set a rate yet.
type TutorProfile struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"user_id"`
	Bio             string   `json:"bio,omitempty"`
	HourlyRate      float64  `json:"hourly_rate"`
	Subjects        []string `json:"subjects,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Location        string   `json:"location,omitempty"`
	OnlineOnly      bool     `json:"online_only"`
}
