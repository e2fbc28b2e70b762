package appdata

import (
	"context"
	"errors"
	"sync"

	"vitalog/internal/models"
)

// Refreshers replace one cached collection with the latest server-reported
// contents. They never surface errors to the caller: with no token present
// the collection is cleared (an unauthenticated session is empty state, not
// an error), and a failed fetch falls back to empty while recording
// LastError.

// RefreshProfile replaces the cached profile.
func (s *Store) RefreshProfile(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.Profile = nil })
		return
	}
	profile, err := s.client.GetProfile(ctx, token)
	if err != nil {
		s.log.LogRefreshError(ctx, "profile", err)
		s.update(func(st *State) {
			st.Profile = nil
			st.LastError = err.Error()
		})
		return
	}
	s.update(func(st *State) { st.Profile = profile })
}

// RefreshBMI replaces the cached BMI. A backend without BMI support yields
// no value, not an error.
func (s *Store) RefreshBMI(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.BMI = nil })
		return
	}
	bmi, err := s.client.GetBMI(ctx, token)
	if err != nil {
		if !errors.Is(err, models.ErrNotSupported) {
			s.log.LogRefreshError(ctx, "bmi", err)
			s.update(func(st *State) {
				st.BMI = nil
				st.LastError = err.Error()
			})
			return
		}
		s.update(func(st *State) { st.BMI = nil })
		return
	}
	s.update(func(st *State) { st.BMI = &bmi })
}

// RefreshWater replaces the cached water collection.
func (s *Store) RefreshWater(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.Water = nil })
		return
	}
	recs, err := s.client.GetAllWater(ctx, token)
	if err != nil {
		s.log.LogRefreshError(ctx, "water", err)
		s.update(func(st *State) {
			st.Water = nil
			st.LastError = err.Error()
		})
		return
	}
	s.update(func(st *State) { st.Water = recs })
}

// RefreshSleep replaces the cached sleep collection. Listing sleep is an
// optional capability; its absence is an empty collection.
func (s *Store) RefreshSleep(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.Sleep = nil })
		return
	}
	recs, err := s.client.GetAllSleep(ctx, token)
	if err != nil {
		if !errors.Is(err, models.ErrNotSupported) {
			s.log.LogRefreshError(ctx, "sleep", err)
			s.update(func(st *State) {
				st.Sleep = nil
				st.LastError = err.Error()
			})
			return
		}
		recs = nil
	}
	s.update(func(st *State) { st.Sleep = recs })
}

// RefreshActivity replaces the cached activity collection.
func (s *Store) RefreshActivity(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.Activity = nil })
		return
	}
	recs, err := s.client.GetAllActivity(ctx, token)
	if err != nil {
		s.log.LogRefreshError(ctx, "activity", err)
		s.update(func(st *State) {
			st.Activity = nil
			st.LastError = err.Error()
		})
		return
	}
	s.update(func(st *State) { st.Activity = recs })
}

// RefreshCustomCategories replaces the cached category list.
func (s *Store) RefreshCustomCategories(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.update(func(st *State) { st.CustomCategories = nil })
		return
	}
	cats, err := s.client.GetCustomCategories(ctx, token)
	if err != nil {
		if !errors.Is(err, models.ErrNotSupported) {
			s.log.LogRefreshError(ctx, "customCategories", err)
			s.update(func(st *State) {
				st.CustomCategories = nil
				st.LastError = err.Error()
			})
			return
		}
		cats = nil
	}
	s.update(func(st *State) { st.CustomCategories = cats })
}

// RefreshCustomData replaces the cached item list of one category. Without
// a token or without the capability the cache entry is left untouched.
func (s *Store) RefreshCustomData(ctx context.Context, categoryID string) {
	token := s.tokens.Token()
	if token == "" {
		return
	}
	items, err := s.client.GetCustomData(ctx, token, categoryID)
	if err != nil {
		if errors.Is(err, models.ErrNotSupported) {
			return
		}
		s.log.LogRefreshError(ctx, "customData", err)
		s.update(func(st *State) {
			st.CustomData[categoryID] = nil
			st.LastError = err.Error()
		})
		return
	}
	s.update(func(st *State) { st.CustomData[categoryID] = items })
}

// RefreshAll refreshes the profile, BMI and the four collections
// concurrently and waits for all of them to settle before releasing the
// loading flag. The refreshers write to disjoint state slices, so they do
// not fail each other; individual outcomes do not affect the flag.
func (s *Store) RefreshAll(ctx context.Context) {
	s.update(func(st *State) {
		st.Loading = true
		st.LastError = ""
	})

	refreshers := []func(context.Context){
		s.RefreshProfile,
		s.RefreshBMI,
		s.RefreshWater,
		s.RefreshSleep,
		s.RefreshActivity,
		s.RefreshCustomCategories,
	}

	var wg sync.WaitGroup
	for _, refresh := range refreshers {
		wg.Add(1)
		go func(fn func(context.Context)) {
			defer wg.Done()
			fn(ctx)
		}(refresh)
	}
	wg.Wait()

	s.update(func(st *State) { st.Loading = false })
}
