package response_models

type TeamMemberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession,omitempty"`
	IsLeader   bool   `json:"is_leader"`
}

type TeamResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	JoinCode string               `json:"join_code,omitempty"`
	Members  []TeamMemberResponse `json:"members"`
}

type SubmissionResponse struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	RepoURL     string `json:"repo_url"`
	Description string `json:"description,omitempty"`
	UpdatedAt   int64  `json:"updated_at"`
}
