package adminconfig

type ResetPasswordRequest struct {
	Mobile      string `json:"mobile" form:"mobile"`
	Code        string `json:"code" form:"code"`
	NewPassword string `json:"new_password" form:"new_password"`
}

type SignInRequest struct {
	Password string `json:"password" form:"password"`
}
