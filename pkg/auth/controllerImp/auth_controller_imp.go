package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/auth/controller"
	"agrisync/pkg/auth/repository"
	"agrisync/pkg/auth/service"
	"agrisync/pkg/httperr"
)

type authCtrl struct {
	svc   service.AuthService
	users repository.UserRepository
}

func New(svc service.AuthService, users repository.UserRepository) controller.AuthController {
	return &authCtrl{svc: svc, users: users}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	fields := httperr.Fields{}
	if req.Username == "" {
		fields.Add("username", httperr.MsgRequired)
	}
	if req.Password == "" {
		fields.Add("password", httperr.MsgRequired)
	}
	if len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	access, refresh, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		return httperr.Detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

type refreshReq struct {
	Refresh string `json:"refresh"`
}

func (h *authCtrl) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if req.Refresh == "" {
		return httperr.Field(c, "refresh", httperr.MsgRequired)
	}
	access, err := h.svc.Refresh(req.Refresh)
	if err != nil {
		return httperr.Detail(c, http.StatusUnauthorized, "Token is invalid or expired")
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

type registerReq struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	fields := httperr.Fields{}
	if req.Username == "" {
		fields.Add("username", httperr.MsgRequired)
	}
	if req.Email == "" {
		fields.Add("email", httperr.MsgRequired)
	} else if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		// bare address only, no display-name forms
		fields.Add("email", "Enter a valid email address.")
	}
	if req.Password == "" {
		fields.Add("password", httperr.MsgRequired)
	}
	if req.Role != "" && !entities.Role(req.Role).Valid() {
		fields.Add("role", fmt.Sprintf(httperr.MsgInvalidChoice, req.Role))
	}
	if len(fields) > 0 {
		return httperr.Validation(c, fields)
	}

	u, err := h.svc.Register(service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entities.Role(req.Role),
	})
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return httperr.Field(c, "username", "A user with that username already exists.")
	case errors.Is(err, service.ErrEmailTaken):
		return httperr.Field(c, "email", "A user with that email already exists.")
	case err != nil:
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *authCtrl) ListUsers(c echo.Context) error {
	out, err := h.users.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
