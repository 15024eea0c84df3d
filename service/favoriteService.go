package service

import (
	"context"
	"errors"
	"time"

	"github.com/ksugita/tenrankai/entity"

	"github.com/flowchartsman/retry"
)

// FavoriteStore is the membership persistence the favorite toggle needs.
type FavoriteStore interface {
	FindOneByID(ctx context.Context, id string) (*entity.Favorite, error)
	FindManyByUserID(ctx context.Context, uid string) ([]*entity.Favorite, error)
	CountByUserID(ctx context.Context, uid string) (int64, error)
	InsertOne(ctx context.Context, favorite *entity.Favorite) error
	DeleteOneByID(ctx context.Context, id string) error
}

// UserStore is the user persistence the toggle services need.
type UserStore interface {
	FindOneByUID(ctx context.Context, uid string) (*entity.User, error)
	IncrementFavoriteCount(ctx context.Context, uid string, delta int) error
}

type MuseumFinder interface {
	FindOneByID(ctx context.Context, id string) (*entity.Museum, error)
}

// FavoriteService toggles favorite museums. The existence check, quota
// check and write all run inside one transaction. Every favorite change
// also writes the user document, so two concurrent toggles by the same
// user conflict there and the loser retries against the committed count;
// the quota cannot be oversubscribed by racing adds for different museums.
type FavoriteService struct {
	favoriteRepository FavoriteStore
	userRepository     UserStore
	museumRepository   MuseumFinder
	transactions       TransactionRunner

	freeLimit int
}

func NewFavoriteService(
	favoriteRepository FavoriteStore,
	userRepository UserStore,
	museumRepository MuseumFinder,
	transactions TransactionRunner,
	freeLimit int,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepository: favoriteRepository,
		userRepository:     userRepository,
		museumRepository:   museumRepository,
		transactions:       transactions,
		freeLimit:          freeLimit,
	}
}

// Toggle adds the museum to the user's favorites if absent, removes it if
// present, and returns the resulting membership state.
func (s *FavoriteService) Toggle(ctx context.Context, uid, museumID string) (bool, error) {
	user, err := s.userRepository.FindOneByUID(ctx, uid)
	if err != nil {
		return false, err
	}
	if _, err := s.museumRepository.FindOneByID(ctx, museumID); err != nil {
		return false, err
	}

	id := entity.MembershipID(uid, museumID)

	var favorited bool

	retrier := retry.NewRetrier(3, 50*time.Millisecond, time.Second)
	err = retrier.RunContext(ctx, func(ctx context.Context) error {
		result, err := s.transactions.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
			existing, err := s.favoriteRepository.FindOneByID(ctx, id)
			if err != nil {
				return nil, err
			}

			if existing != nil {
				if err := s.favoriteRepository.DeleteOneByID(ctx, id); err != nil {
					return nil, err
				}
				if err := s.userRepository.IncrementFavoriteCount(ctx, uid, -1); err != nil {
					return nil, err
				}
				return false, nil
			}

			// The museum may have been deleted between the precondition
			// check and the transaction.
			if _, err := s.museumRepository.FindOneByID(ctx, museumID); err != nil {
				return nil, err
			}

			if !user.IsPro() {
				count, err := s.favoriteRepository.CountByUserID(ctx, uid)
				if err != nil {
					return nil, err
				}
				if count >= int64(s.freeLimit) {
					return nil, entity.NewFavoriteLimitError(s.freeLimit)
				}
			}

			favorite := &entity.Favorite{
				ID:        id,
				UserID:    uid,
				MuseumID:  museumID,
				CreatedAt: time.Now(),
			}
			if err := s.favoriteRepository.InsertOne(ctx, favorite); err != nil {
				return nil, err
			}
			if err := s.userRepository.IncrementFavoriteCount(ctx, uid, 1); err != nil {
				return nil, err
			}
			return true, nil
		})
		if err != nil {
			var apiErr *entity.APIError
			if errors.As(err, &apiErr) {
				return retry.Stop(err)
			}
			return err
		}

		favorited = result.(bool)
		return nil
	})
	if err != nil {
		return false, err
	}

	return favorited, nil
}

// FindMuseumIDs returns the ids of the user's favorite museums, newest
// first.
func (s *FavoriteService) FindMuseumIDs(ctx context.Context, uid string) ([]string, error) {
	favorites, err := s.favoriteRepository.FindManyByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	museumIDs := make([]string, len(favorites))
	for i, favorite := range favorites {
		museumIDs[i] = favorite.MuseumID
	}
	return museumIDs, nil
}
