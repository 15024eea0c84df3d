package service

import (
	"context"
	"errors"
	"time"

	"github.com/ksugita/tenrankai/entity"

	"github.com/flowchartsman/retry"
)

// BookmarkStore is the membership persistence the bookmark toggle needs.
type BookmarkStore interface {
	FindOneByID(ctx context.Context, id string) (*entity.Bookmark, error)
	FindManyByUserID(ctx context.Context, uid string) ([]*entity.Bookmark, error)
	InsertOne(ctx context.Context, bookmark *entity.Bookmark) error
	DeleteOneByID(ctx context.Context, id string) error
}

type ExhibitionFinder interface {
	FindOneByID(ctx context.Context, id string) (*entity.Exhibition, error)
}

// BookmarkService toggles bookmarked exhibitions. Bookmarking is a pro-tier
// feature; there is no quota.
type BookmarkService struct {
	bookmarkRepository   BookmarkStore
	userRepository       UserStore
	exhibitionRepository ExhibitionFinder
	transactions         TransactionRunner
}

func NewBookmarkService(
	bookmarkRepository BookmarkStore,
	userRepository UserStore,
	exhibitionRepository ExhibitionFinder,
	transactions TransactionRunner,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepository:   bookmarkRepository,
		userRepository:       userRepository,
		exhibitionRepository: exhibitionRepository,
		transactions:         transactions,
	}
}

// Toggle adds the exhibition to the user's bookmarks if absent, removes it
// if present, and returns the resulting membership state.
func (s *BookmarkService) Toggle(ctx context.Context, uid, exhibitionID string) (bool, error) {
	user, err := s.userRepository.FindOneByUID(ctx, uid)
	if err != nil {
		return false, err
	}
	if !user.IsPro() {
		return false, entity.NewPlanRequiredError()
	}
	if _, err := s.exhibitionRepository.FindOneByID(ctx, exhibitionID); err != nil {
		return false, err
	}

	id := entity.MembershipID(uid, exhibitionID)

	var bookmarked bool

	retrier := retry.NewRetrier(3, 50*time.Millisecond, time.Second)
	err = retrier.RunContext(ctx, func(ctx context.Context) error {
		result, err := s.transactions.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
			existing, err := s.bookmarkRepository.FindOneByID(ctx, id)
			if err != nil {
				return nil, err
			}

			if existing != nil {
				if err := s.bookmarkRepository.DeleteOneByID(ctx, id); err != nil {
					return nil, err
				}
				return false, nil
			}

			// The exhibition may have been deleted between the
			// precondition check and the transaction.
			if _, err := s.exhibitionRepository.FindOneByID(ctx, exhibitionID); err != nil {
				return nil, err
			}

			bookmark := &entity.Bookmark{
				ID:           id,
				UserID:       uid,
				ExhibitionID: exhibitionID,
				CreatedAt:    time.Now(),
			}
			if err := s.bookmarkRepository.InsertOne(ctx, bookmark); err != nil {
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

		bookmarked = result.(bool)
		return nil
	})
	if err != nil {
		return false, err
	}

	return bookmarked, nil
}

// FindExhibitionIDs returns the ids of the user's bookmarked exhibitions,
// newest first. Pro tier only, matching the toggle.
func (s *BookmarkService) FindExhibitionIDs(ctx context.Context, uid string) ([]string, error) {
	user, err := s.userRepository.FindOneByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.IsPro() {
		return nil, entity.NewPlanRequiredError()
	}

	bookmarks, err := s.bookmarkRepository.FindManyByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	exhibitionIDs := make([]string, len(bookmarks))
	for i, bookmark := range bookmarks {
		exhibitionIDs[i] = bookmark.ExhibitionID
	}
	return exhibitionIDs, nil
}
