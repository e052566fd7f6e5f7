package user

type SignupInput struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Email    string  `json:"email" binding:"required,email,max=200"`
	Password string  `json:"password" binding:"required,min=6"`
	Ward     *string `json:"ward,omitempty" binding:"omitempty,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleInput struct {
	Role Role `json:"role" binding:"required,oneof=citizen department admin"`
}
