package request_models

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type OnboardingRequest struct {
	Profession  string `json:"profession" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Institution string `json:"institution"`
	ThemeCode   string `json:"theme_code"`
}
