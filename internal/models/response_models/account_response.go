package response_models

type ProfileResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	IsBoarding    bool   `json:"is_boarding"`
	EmailVerified bool   `json:"email_verified"`
	Profession    string `json:"profession,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Institution   string `json:"institution,omitempty"`
	ThemeCode     string `json:"theme_code,omitempty"`
	TeamID        string `json:"team_id,omitempty"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	IsBoarding bool   `json:"is_boarding"`
}
