package directory

// TutorCard is a tutor's public listing entry: identity plus profile fields
// plus the computed rating. Rating is null until the first review lands.
type TutorCard struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	AvatarURL       string   `json:"avatar_url,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	HourlyRate      float64  `json:"hourly_rate,omitempty"`
	Subjects        []string `json:"subjects,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Location        string   `json:"location,omitempty"`
	OnlineOnly      bool     `json:"online_only"`
	Rating          *float64 `json:"rating"`
	TotalReviews    int64    `json:"total_reviews"`
}
