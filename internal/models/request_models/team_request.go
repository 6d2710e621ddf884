package request_models

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=3,max=64"`
}

type JoinTeamRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

type SubmitProjectRequest struct {
	RepoURL     string `json:"repo_url" binding:"required,url"`
	Description string `json:"description"`
}

type UpdatePricingRequest struct {
	RegularAmount   int64  `json:"regular_amount" binding:"required"`
	EarlyBirdAmount int64  `json:"early_bird_amount" binding:"required"`
	EarlyBirdActive bool   `json:"early_bird_active"`
	Currency        string `json:"currency" binding:"required,len=3"`
}
