package service

import (
	"context"
	"time"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/repository"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// CatalogService assembles the museum directory: published exhibitions are
// classified against the current time, joined to their venues by name, and
// venues without a single current or upcoming exhibition are dropped.
type CatalogService struct {
	museumRepository     *repository.MuseumRepository
	exhibitionRepository *repository.ExhibitionRepository
	location             *time.Location
}

func NewCatalogService(
	museumRepository *repository.MuseumRepository,
	exhibitionRepository *repository.ExhibitionRepository,
	location *time.Location,
) *CatalogService {
	return &CatalogService{
		museumRepository:     museumRepository,
		exhibitionRepository: exhibitionRepository,
		location:             location,
	}
}

func (s *CatalogService) Museums(ctx context.Context) ([]*entity.Museum, error) {
	now := time.Now()
	// An exhibition stays in the catalog through the whole of its end date,
	// so the query cutoff is the start of the current day, not the instant.
	y, m, d := now.In(s.location).Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, s.location)

	var museums []*entity.Museum
	var exhibitions []*entity.Exhibition

	errwg, groupCtx := errgroup.WithContext(ctx)
	errwg.Go(func() error {
		var err error
		museums, err = s.museumRepository.FindAll(groupCtx)
		return err
	})
	errwg.Go(func() error {
		var err error
		exhibitions, err = s.exhibitionRepository.FindManyActiveEndingAfter(groupCtx, startOfDay)
		return err
	})
	if err := errwg.Wait(); err != nil {
		return nil, err
	}

	return s.assemble(museums, exhibitions, now), nil
}

func (s *CatalogService) assemble(museums []*entity.Museum, exhibitions []*entity.Exhibition, now time.Time) []*entity.Museum {
	byVenue := make(map[string][]*entity.Exhibition, len(museums))
	for _, exhibition := range exhibitions {
		exhibition.OngoingStatus = exhibition.OngoingStatusAt(now, s.location)
		byVenue[exhibition.Venue] = append(byVenue[exhibition.Venue], exhibition)
	}

	result := make([]*entity.Museum, 0, len(museums))
	for _, museum := range museums {
		museum.Exhibitions = byVenue[museum.Name]
		if len(museum.Exhibitions) == 0 {
			continue
		}
		result = append(result, museum)
	}

	// Venues with the most recently added exhibitions come first.
	slices.SortStableFunc(result, func(a, b *entity.Museum) int {
		return latestCreatedAt(b.Exhibitions).Compare(latestCreatedAt(a.Exhibitions))
	})

	return result
}

// MuseumNames returns the names of all venues currently in the directory,
// for filter options and search suggestions.
func (s *CatalogService) MuseumNames(ctx context.Context) ([]string, error) {
	museums, err := s.Museums(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(museums))
	for i, museum := range museums {
		names[i] = museum.Name
	}
	return names, nil
}

func latestCreatedAt(exhibitions []*entity.Exhibition) time.Time {
	var latest time.Time
	for _, e := range exhibitions {
		if e.CreatedAt.After(latest) {
			latest = e.CreatedAt
		}
	}
	return latest
}
