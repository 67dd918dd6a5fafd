package favorites

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/taiwoajasa245/divine-answers/pkg/util"
)

var ErrNotFound = errors.New("favorite not found")

type FavoritesService struct {
	storage Storage
	now     func() time.Time
}

func NewFavoritesService(storage Storage) *FavoritesService {
	return &FavoritesService{storage: storage, now: time.Now}
}

// WithClock replaces the time source.
func (s *FavoritesService) WithClock(now func() time.Time) *FavoritesService {
	s.now = now
	return s
}

// Add appends a favorite. ID and SavedAt are assigned here.
func (s *FavoritesService) Add(ctx context.Context, fav Favorite) (Favorite, error) {
	favs, err := s.storage.Load(ctx)
	if err != nil {
		return Favorite{}, err
	}

	now := s.now()
	var last int64
	for _, f := range favs {
		last = max(last, f.ID)
	}
	fav.ID = util.NextTimestampID(now, last)
	fav.SavedAt = now.UTC()

	favs = append(favs, fav)
	if err := s.storage.Save(ctx, favs); err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// List returns favorites most recent first.
func (s *FavoritesService) List(ctx context.Context) ([]Favorite, error) {
	favs, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(favs)
	return favs, nil
}

// Delete removes the favorite with id and returns the remaining list, most
// recent first. Storage keeps its oldest-first order.
func (s *FavoritesService) Delete(ctx context.Context, id int64) ([]Favorite, error) {
	favs, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(favs, func(f Favorite) bool { return f.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	remaining := slices.Delete(favs, idx, idx+1)

	if err := s.storage.Save(ctx, remaining); err != nil {
		return nil, err
	}

	view := slices.Clone(remaining)
	slices.Reverse(view)
	return view, nil
}
