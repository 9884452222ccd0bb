package service

import (
	"errors"

	"agrisync/entities"
)

var (
	// ErrBadCredentials covers both unknown username and wrong password;
	// callers must not be able to tell which.
	ErrBadCredentials = errors.New("no active account found with the given credentials")
	ErrUsernameTaken  = errors.New("a user with that username already exists")
	ErrEmailTaken     = errors.New("a user with that email already exists")
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entities.Role
}

type AuthService interface {
	Register(in RegisterInput) (*entities.User, error)
	Login(username, password string) (access, refresh string, err error)
	Refresh(refreshToken string) (access string, err error)
}
