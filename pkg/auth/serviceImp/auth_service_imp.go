package serviceImp

import (
	"golang.org/x/crypto/bcrypt"

	"agrisync/entities"
	"agrisync/pkg/auth/repository"
	"agrisync/pkg/auth/service"
	"agrisync/pkg/token"
)

type authSvc struct {
	users  repository.UserRepository
	issuer *token.Issuer
}

func New(users repository.UserRepository, issuer *token.Issuer) service.AuthService {
	return &authSvc{users: users, issuer: issuer}
}

func (s *authSvc) Register(in service.RegisterInput) (*entities.User, error) {
	taken, err := s.users.UsernameExists(in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, service.ErrUsernameTaken
	}
	taken, err = s.users.EmailExists(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, service.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entities.RoleWorker
	}
	u := &entities.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authSvc) Login(username, password string) (string, string, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return "", "", service.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", "", service.ErrBadCredentials
	}
	return s.issuer.Pair(u)
}

func (s *authSvc) Refresh(refreshToken string) (string, error) {
	claims, err := s.issuer.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", err
	}
	return s.issuer.AccessFromClaims(claims)
}
