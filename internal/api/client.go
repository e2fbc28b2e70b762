// Package api defines the capability contract every backend client
// implements. Two implementations exist: an in-memory mock (mockapi) used
// for local development and testing, and an HTTP-backed client (remoteapi)
// speaking to a real server.
package api

import (
	"context"

	"vitalog/internal/models"
)

// Client is the full contract for remote operations. Every operation that
// requires authorization fails with an unauthorized condition when given an
// invalid or absent token.
//
// Operations marked optional may be absent from an implementation; absent
// operations return an error wrapping models.ErrNotSupported and callers
// must treat that as a defined no-op, never as a failure.
type Client interface {
	// Auth
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Register(ctx context.Context, in models.RegisterInput) (models.AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*models.User, error)

	// BMI, rounded to one decimal by the backend.
	GetBMI(ctx context.Context, token string) (float64, error)

	// Water
	AddWater(ctx context.Context, token, datetime string, amountMl float64) (*models.WaterRecord, error)
	GetAllWater(ctx context.Context, token string) ([]models.WaterRecord, error)
	// Optional. Unspecified update fields retain their prior value.
	UpdateWater(ctx context.Context, token, id string, upd models.WaterUpdate) (*models.WaterRecord, error)
	// Optional.
	DeleteWater(ctx context.Context, token, id string) error

	// Sleep
	AddSleep(ctx context.Context, token, datetime string, hours float64) (*models.SleepRecord, error)
	// Optional.
	GetAllSleep(ctx context.Context, token string) ([]models.SleepRecord, error)
	// Optional.
	UpdateSleep(ctx context.Context, token, id string, upd models.SleepUpdate) (*models.SleepRecord, error)
	// Optional.
	DeleteSleep(ctx context.Context, token, id string) error

	// Activity
	AddActivity(ctx context.Context, token, datetime string, minutes float64, intensity string) (*models.ActivityRecord, error)
	GetAllActivity(ctx context.Context, token string) ([]models.ActivityRecord, error)
	// Optional.
	UpdateActivity(ctx context.Context, token, id string, upd models.ActivityUpdate) (*models.ActivityRecord, error)
	// Optional.
	DeleteActivity(ctx context.Context, token, id string) error
	// SortActivityByDuration reorders the server-side activity collection in
	// place and returns nothing; callers must re-fetch to observe the effect.
	SortActivityByDuration(ctx context.Context, token string) error

	// Custom tracking. All optional. The token may be empty on reads; the
	// backend decides whether to require it.
	GetCustomCategories(ctx context.Context, token string) ([]models.Category, error)
	GetCustomData(ctx context.Context, token, categoryID string) ([]models.CustomItem, error)
	// CreateCustomCategory is idempotent: creating an existing name returns
	// the existing category unchanged.
	CreateCustomCategory(ctx context.Context, token, categoryName string) (*models.Category, error)
	AddCustomItem(ctx context.Context, token, categoryID, datetime, note string) (*models.CustomItem, error)
	UpdateCustomItem(ctx context.Context, token, categoryID, itemID string, upd models.CustomItemUpdate) (*models.CustomItem, error)
	DeleteCustomItem(ctx context.Context, token, categoryID, itemID string) error
	// DeleteCustomCategory removes the category and every item under it.
	DeleteCustomCategory(ctx context.Context, token, categoryID string) error
}
