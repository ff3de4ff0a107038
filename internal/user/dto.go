package user

type RegisterDTO struct {
	Name             string `json:"name"`
	BusinessName     string `json:"businessName"`
	BusinessCategory string `json:"businessCategory"`
	Mobile           string `json:"mobile"`
	Email            string `json:"email"`
	ProfileImage     string `json:"profileImage"`
}

type LoginDTO struct {
	Mobile string `json:"mobile"`
}

type UpdateProfileDTO struct {
	Name             *string `json:"name"`
	BusinessName     *string `json:"businessName"`
	BusinessCategory *string `json:"businessCategory"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	Website          *string `json:"website"`
	ProfileImage     *string `json:"profileImage"`
}

type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
