package services

import (
	"errors"
	"fmt"

	"github.com/MUCCHU/imf-gadgets-api/app/models"
	"github.com/MUCCHU/imf-gadgets-api/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register hashes the password with a fresh bcrypt salt and persists the user.
// The username uniqueness check is done up front, but a concurrent insert can
// still trip the unique index, which is reported the same way.
func (s *UserService) Register(username, password string) (*models.User, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// ValidateCredentials returns the same error for an unknown username and a
// wrong password so callers cannot probe which usernames exist.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		// stored hash does not even parse as bcrypt
		return nil, fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
	return u, nil
}
