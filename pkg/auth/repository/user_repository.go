package repository

import "agrisync/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id uint) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	List() ([]entities.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}
