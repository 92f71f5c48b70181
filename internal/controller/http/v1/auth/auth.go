package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/auth"
	"worksite/backend/internal/repository/postgres/user"
)

type Controller struct {
	user User
	auth *auth.Auth
}

func NewController(user User, auth *auth.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, *data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(detail.Password), []byte(*data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect email or password"), http.StatusBadRequest))
	}

	accessToken, refreshToken, err := uc.auth.GenTokens(c.Ctx, detail.ID, detail.Role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Register(c *web.Context) error {
	var request user.CreateRequest

	if err := c.BindFunc(&request, "Email", "FirstName", "Password"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	accessToken, refreshToken, err := uc.auth.GenTokens(c.Ctx, response.ID, response.Role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"user": response,
			"tokens": map[string]string{
				"access_token":  accessToken,
				"refresh_token": refreshToken,
			},
		},
		"status": true,
	}, http.StatusOK)
}

type refreshTokenRequest struct {
	RefreshToken *string `json:"refresh_token" form:"refresh_token"`
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data refreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateRefreshToken(c.Ctx, *data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenTokens(c.Ctx, claims.UserId, claims.Role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"status": true,
	}, http.StatusOK)
}
