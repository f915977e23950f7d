package auth

import (
	"net/http"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/auth"
	"staffportal/backend/internal/repository/postgres/adminconfig"
	"staffportal/backend/internal/repository/postgres/employee"

	"github.com/pkg/errors"
)

type Controller struct {
	adminConfig AdminConfig
	employee    Employee
	otp         Otp
	auth        *auth.Auth
	adminMobile string
}

func NewController(adminConfig AdminConfig, employeeRepo Employee, otp Otp, a *auth.Auth, adminMobile string) *Controller {
	return &Controller{
		adminConfig: adminConfig,
		employee:    employeeRepo,
		otp:         otp,
		auth:        a,
		adminMobile: adminMobile,
	}
}

// SignIn authenticates against the shared admin secret.
func (uc Controller) SignIn(c *web.Context) error {
	var data adminconfig.SignInRequest

	if err := c.BindFunc(&data, "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.adminConfig.VerifyPassword(c.Ctx, data.Password)
	if err != nil {
		return c.RespondError(err)
	}

	accessToken, err := uc.auth.GenerateToken(detail.ID, auth.RoleAdmin)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token": accessToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// EmployeeSignIn authenticates an employee by id and PIN.
func (uc Controller) EmployeeSignIn(c *web.Context) error {
	var data employee.SignInRequest

	if err := c.BindFunc(&data, "EmployeeID", "Pin"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.employee.VerifyPin(c.Ctx, data)
	if err != nil {
		return c.RespondError(err)
	}

	accessToken, err := uc.auth.GenerateToken(detail.ID, auth.RoleEmployee)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token": accessToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// SendOtp issues a password-reset code to the configured admin mobile.
func (uc Controller) SendOtp(c *web.Context) error {
	var data adminconfig.ResetPasswordRequest

	if err := c.BindFunc(&data, "Mobile"); err != nil {
		return c.RespondError(err)
	}

	if data.Mobile != uc.adminMobile {
		return c.RespondError(web.NewRequestError(errors.New("unknown mobile number"), http.StatusBadRequest))
	}

	sent, err := uc.otp.Issue(c.Ctx, data.Mobile, "admin password reset")
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"sent": sent,
		},
		"status": true,
	}, http.StatusOK)
}

// ResetPassword verifies the OTP and replaces the admin secret.
func (uc Controller) ResetPassword(c *web.Context) error {
	var data adminconfig.ResetPasswordRequest

	if err := c.BindFunc(&data, "Mobile", "Code", "NewPassword"); err != nil {
		return c.RespondError(err)
	}

	ok, err := uc.otp.Verify(c.Ctx, data.Mobile, data.Code)
	if err != nil {
		return c.RespondError(err)
	}
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("incorrect or expired code"), http.StatusBadRequest))
	}

	if err = uc.adminConfig.UpdatePassword(c.Ctx, data.NewPassword); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
