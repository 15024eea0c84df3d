package service

import (
	"context"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/repository"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(userRepository *repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) FindOneByUID(ctx context.Context, uid string) (*entity.User, error) {
	return s.userRepository.FindOneByUID(ctx, uid)
}

// FindOneOrCreate returns the user document, creating it on first sign-in
// from the verified token claims.
func (s *UserService) FindOneOrCreate(ctx context.Context, uid, email, displayName string) (*entity.User, error) {
	return s.userRepository.UpsertOne(ctx, entity.User{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
	})
}

func (s *UserService) UpdateDisplayName(ctx context.Context, uid, displayName string) (*entity.User, error) {
	return s.userRepository.UpdateDisplayName(ctx, uid, displayName)
}
