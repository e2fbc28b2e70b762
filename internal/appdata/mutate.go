package appdata

import (
	"context"
	"errors"

	"vitalog/internal/models"
)

// Mutations resolve the token (failing when absent), invoke the client
// operation, and re-run the matching refresher to resynchronize the cache.
// An operation the active client does not support is a defined no-op; the
// refresher still runs so the cache reflects whatever the backend holds.
// Real failures propagate to the caller and skip the refresh.

// callMutation collapses the shared tolerance for absent capabilities.
func callMutation(err error) error {
	if err != nil && !errors.Is(err, models.ErrNotSupported) {
		return err
	}
	return nil
}

// AddWater records a water intake and refreshes the water collection.
func (s *Store) AddWater(ctx context.Context, datetime string, amountMl float64) (*models.WaterRecord, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	rec, err := s.client.AddWater(ctx, token, datetime, amountMl)
	if err := callMutation(err); err != nil {
		return nil, err
	}
	s.log.LogMutation(ctx, "addWater", map[string]interface{}{"amountMl": amountMl})
	s.RefreshWater(ctx)
	return rec, nil
}

// UpdateWater applies a partial update and refreshes the water collection.
func (s *Store) UpdateWater(ctx context.Context, id string, upd models.WaterUpdate) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	_, err = s.client.UpdateWater(ctx, token, id, upd)
	if err := callMutation(err); err != nil {
		return err
	}
	s.RefreshWater(ctx)
	return nil
}

// DeleteWater removes a record and refreshes the water collection.
func (s *Store) DeleteWater(ctx context.Context, id string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.DeleteWater(ctx, token, id)); err != nil {
		return err
	}
	s.RefreshWater(ctx)
	return nil
}

// AddSleep records a sleep session and refreshes the sleep collection.
func (s *Store) AddSleep(ctx context.Context, datetime string, hours float64) (*models.SleepRecord, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	rec, err := s.client.AddSleep(ctx, token, datetime, hours)
	if err := callMutation(err); err != nil {
		return nil, err
	}
	s.log.LogMutation(ctx, "addSleep", map[string]interface{}{"hours": hours})
	s.RefreshSleep(ctx)
	return rec, nil
}

// UpdateSleep applies a partial update and refreshes the sleep collection.
func (s *Store) UpdateSleep(ctx context.Context, id string, upd models.SleepUpdate) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	_, err = s.client.UpdateSleep(ctx, token, id, upd)
	if err := callMutation(err); err != nil {
		return err
	}
	s.RefreshSleep(ctx)
	return nil
}

// DeleteSleep removes a record and refreshes the sleep collection.
func (s *Store) DeleteSleep(ctx context.Context, id string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.DeleteSleep(ctx, token, id)); err != nil {
		return err
	}
	s.RefreshSleep(ctx)
	return nil
}

// AddActivity records an activity session and refreshes the activity
// collection.
func (s *Store) AddActivity(ctx context.Context, datetime string, minutes float64, intensity string) (*models.ActivityRecord, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	rec, err := s.client.AddActivity(ctx, token, datetime, minutes, intensity)
	if err := callMutation(err); err != nil {
		return nil, err
	}
	s.log.LogMutation(ctx, "addActivity", map[string]interface{}{"minutes": minutes, "intensity": intensity})
	s.RefreshActivity(ctx)
	return rec, nil
}

// UpdateActivity applies a partial update and refreshes the activity
// collection.
func (s *Store) UpdateActivity(ctx context.Context, id string, upd models.ActivityUpdate) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	_, err = s.client.UpdateActivity(ctx, token, id, upd)
	if err := callMutation(err); err != nil {
		return err
	}
	s.RefreshActivity(ctx)
	return nil
}

// DeleteActivity removes a record and refreshes the activity collection.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.DeleteActivity(ctx, token, id)); err != nil {
		return err
	}
	s.RefreshActivity(ctx)
	return nil
}

// SortActivityByDuration asks the backend to reorder the activity
// collection, then refreshes to observe the new order.
func (s *Store) SortActivityByDuration(ctx context.Context) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.SortActivityByDuration(ctx, token)); err != nil {
		return err
	}
	s.RefreshActivity(ctx)
	return nil
}

// CreateCustomCategory creates (or idempotently returns) a category and
// refreshes the category list.
func (s *Store) CreateCustomCategory(ctx context.Context, categoryName string) (*models.Category, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	cat, err := s.client.CreateCustomCategory(ctx, token, categoryName)
	if err := callMutation(err); err != nil {
		return nil, err
	}
	s.RefreshCustomCategories(ctx)
	return cat, nil
}

// AddCustomItem logs an entry under a category and refreshes that
// category's items.
func (s *Store) AddCustomItem(ctx context.Context, categoryID, datetime, note string) (*models.CustomItem, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	item, err := s.client.AddCustomItem(ctx, token, categoryID, datetime, note)
	if err := callMutation(err); err != nil {
		return nil, err
	}
	s.RefreshCustomData(ctx, categoryID)
	return item, nil
}

// UpdateCustomItem applies a partial update and refreshes that category's
// items.
func (s *Store) UpdateCustomItem(ctx context.Context, categoryID, itemID string, upd models.CustomItemUpdate) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	_, err = s.client.UpdateCustomItem(ctx, token, categoryID, itemID, upd)
	if err := callMutation(err); err != nil {
		return err
	}
	s.RefreshCustomData(ctx, categoryID)
	return nil
}

// DeleteCustomItem removes an entry and refreshes that category's items.
func (s *Store) DeleteCustomItem(ctx context.Context, categoryID, itemID string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.DeleteCustomItem(ctx, token, categoryID, itemID)); err != nil {
		return err
	}
	s.RefreshCustomData(ctx, categoryID)
	return nil
}

// DeleteCustomCategory removes a category, refreshes the category list, and
// drops the category's cached item list locally.
func (s *Store) DeleteCustomCategory(ctx context.Context, categoryID string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}
	if err := callMutation(s.client.DeleteCustomCategory(ctx, token, categoryID)); err != nil {
		return err
	}
	s.RefreshCustomCategories(ctx)
	s.update(func(st *State) { delete(st.CustomData, categoryID) })
	return nil
}
