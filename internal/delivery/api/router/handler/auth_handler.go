package handler

import (
	"strings"

	"partnerdash/internal/delivery/api/response"
	"partnerdash/internal/delivery/api/validator"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	CompanyName string  `json:"companyName" validate:"required,max=255"`
	TradeName   *string `json:"tradeName" validate:"omitempty,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Password    string  `json:"password" validate:"required,maxbytes=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves the public register and login endpoints.
type AuthHandler struct {
	uc usecase.PartnerUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.PartnerUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register opens a partner account and returns a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		if validator.HasMissingField(err) {
			return domainerrors.ErrMissingRegistrationFields
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		CompanyName: req.CompanyName,
		TradeName:   req.TradeName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toAuthResponse(output))
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingCredentials
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toAuthResponse(output))
}
