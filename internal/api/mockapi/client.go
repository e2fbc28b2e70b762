// Package mockapi is an in-memory implementation of the api.Client contract.
// It simulates a backend with synthetic per-user collections and randomized
// artificial latency, and is used for local development and for exercising
// loading states in tests.
package mockapi

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"vitalog/internal/api"
	"vitalog/internal/models"
	"vitalog/internal/observability"
	"vitalog/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Client implements api.Client against an in-memory store.
type Client struct {
	db      *memDB
	latency bool
	log     *observability.ClientLogger
}

var _ api.Client = (*Client)(nil)

// Option configures a mock client.
type Option func(*Client)

// WithoutLatency disables the artificial network delays. Tests use this.
func WithoutLatency() Option {
	return func(c *Client) { c.latency = false }
}

// WithDemoData fills each seeded user with a week of generated records.
func WithDemoData() Option {
	return func(c *Client) { c.seedDemoData() }
}

// New creates a mock client seeded with the fixture users alice and bob.
func New(opts ...Option) *Client {
	c := &Client{
		db:      newMemDB(),
		latency: true,
		log:     observability.NewClientLogger("mock"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// delay sleeps a randomized interval to approximate real network behavior,
// honoring context cancellation.
func (c *Client) delay(ctx context.Context, minMs, maxMs int) error {
	if !c.latency {
		return ctx.Err()
	}
	d := time.Duration(minMs+rand.Intn(maxMs-minMs+1)) * time.Millisecond
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// authorize maps a bearer token back to its user ID.
func (c *Client) authorize(token string) (string, error) {
	uid := userIDFromToken(token)
	if uid == "" {
		return "", models.NewUnauthorizedError("invalid token")
	}
	return uid, nil
}

// Login validates a name/password pair and returns the user's deterministic
// token. The fixture user named "error" always fails with a server error to
// exercise failure propagation.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	if err := c.delay(ctx, 300, 500); err != nil {
		return models.AuthResponse{}, err
	}
	if err := validation.ValidateCredentials(creds); err != nil {
		return models.AuthResponse{}, err
	}
	if creds.Name == "error" {
		return models.AuthResponse{}, models.NewAPIError("mock backend failure", nil)
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	user := c.db.userByName(creds.Name)
	if user == nil || bcrypt.CompareHashAndPassword(user.passwordHash, []byte(creds.Password)) != nil {
		return models.AuthResponse{}, models.NewUnauthorizedError("invalid name or password")
	}
	c.log.LogCall(ctx, "Login", map[string]interface{}{"user": user.ID})
	return models.AuthResponse{Token: tokenFor(user.ID)}, nil
}

// Register creates a new user and returns its token. Duplicate names are
// rejected.
func (c *Client) Register(ctx context.Context, in models.RegisterInput) (models.AuthResponse, error) {
	if err := c.delay(ctx, 400, 700); err != nil {
		return models.AuthResponse{}, err
	}
	if err := validation.ValidateRegisterInput(in); err != nil {
		return models.AuthResponse{}, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	if c.db.userByName(in.Name) != nil {
		return models.AuthResponse{}, models.NewConflictError("name already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		return models.AuthResponse{}, models.NewAPIError("hashing password", err)
	}

	gender := in.Gender
	if gender == "" {
		gender = models.GenderOther
	}
	user := c.db.addUser(&mockUser{
		User: models.User{
			Name:     in.Name,
			Age:      in.Age,
			WeightKg: in.WeightKg,
			HeightM:  in.HeightM,
			Gender:   gender,
		},
		passwordHash: hash,
	})
	c.log.LogCall(ctx, "Register", map[string]interface{}{"user": user.ID})
	return models.AuthResponse{Token: tokenFor(user.ID)}, nil
}

// GetProfile returns a copy of the token owner's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	if err := c.delay(ctx, 100, 200); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	user := c.db.userByID(uid)
	if user == nil {
		return nil, models.NewNotFoundError("user", uid)
	}
	profile := user.User
	return &profile, nil
}

// GetBMI derives the BMI from the stored profile, rounded to one decimal.
func (c *Client) GetBMI(ctx context.Context, token string) (float64, error) {
	if err := c.delay(ctx, 80, 150); err != nil {
		return 0, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return 0, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	user := c.db.userByID(uid)
	if user == nil {
		return 0, models.NewNotFoundError("user", uid)
	}
	if user.WeightKg <= 0 || user.HeightM <= 0 {
		return 0, models.NewValidationError("user data incomplete")
	}
	bmi := user.WeightKg / (user.HeightM * user.HeightM)
	return math.Round(bmi*10) / 10, nil
}

func (c *Client) AddWater(ctx context.Context, token, datetime string, amountMl float64) (*models.WaterRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDatetime(datetime); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegative("amountMl", amountMl); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	rec := models.WaterRecord{ID: uuid.NewString(), Datetime: datetime, AmountMl: amountMl}
	c.db.water[uid] = append(c.db.water[uid], rec)
	return &rec, nil
}

func (c *Client) GetAllWater(ctx context.Context, token string) ([]models.WaterRecord, error) {
	if err := c.delay(ctx, 80, 180); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	out := make([]models.WaterRecord, len(c.db.water[uid]))
	copy(out, c.db.water[uid])
	return out, nil
}

func (c *Client) UpdateWater(ctx context.Context, token, id string, upd models.WaterUpdate) (*models.WaterRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	recs := c.db.water[uid]
	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		if upd.Datetime != nil {
			recs[i].Datetime = *upd.Datetime
		}
		if upd.AmountMl != nil {
			recs[i].AmountMl = *upd.AmountMl
		}
		rec := recs[i]
		return &rec, nil
	}
	return nil, models.NewNotFoundError("water record", id)
}

func (c *Client) DeleteWater(ctx context.Context, token, id string) error {
	if err := c.delay(ctx, 60, 150); err != nil {
		return err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	c.db.water[uid] = deleteRecord(c.db.water[uid], func(r models.WaterRecord) bool { return r.ID == id })
	return nil
}

func (c *Client) AddSleep(ctx context.Context, token, datetime string, hours float64) (*models.SleepRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDatetime(datetime); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegative("hours", hours); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	rec := models.SleepRecord{ID: uuid.NewString(), Datetime: datetime, Hours: hours}
	c.db.sleep[uid] = append(c.db.sleep[uid], rec)
	return &rec, nil
}

func (c *Client) GetAllSleep(ctx context.Context, token string) ([]models.SleepRecord, error) {
	if err := c.delay(ctx, 80, 180); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	out := make([]models.SleepRecord, len(c.db.sleep[uid]))
	copy(out, c.db.sleep[uid])
	return out, nil
}

func (c *Client) UpdateSleep(ctx context.Context, token, id string, upd models.SleepUpdate) (*models.SleepRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	recs := c.db.sleep[uid]
	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		if upd.Datetime != nil {
			recs[i].Datetime = *upd.Datetime
		}
		if upd.Hours != nil {
			recs[i].Hours = *upd.Hours
		}
		rec := recs[i]
		return &rec, nil
	}
	return nil, models.NewNotFoundError("sleep record", id)
}

func (c *Client) DeleteSleep(ctx context.Context, token, id string) error {
	if err := c.delay(ctx, 60, 150); err != nil {
		return err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	c.db.sleep[uid] = deleteRecord(c.db.sleep[uid], func(r models.SleepRecord) bool { return r.ID == id })
	return nil
}

func (c *Client) AddActivity(ctx context.Context, token, datetime string, minutes float64, intensity string) (*models.ActivityRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDatetime(datetime); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegative("minutes", minutes); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	rec := models.ActivityRecord{ID: uuid.NewString(), Datetime: datetime, Minutes: minutes, Intensity: intensity}
	c.db.activity[uid] = append(c.db.activity[uid], rec)
	return &rec, nil
}

func (c *Client) GetAllActivity(ctx context.Context, token string) ([]models.ActivityRecord, error) {
	if err := c.delay(ctx, 100, 220); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	out := make([]models.ActivityRecord, len(c.db.activity[uid]))
	copy(out, c.db.activity[uid])
	return out, nil
}

func (c *Client) UpdateActivity(ctx context.Context, token, id string, upd models.ActivityUpdate) (*models.ActivityRecord, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	recs := c.db.activity[uid]
	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		if upd.Datetime != nil {
			recs[i].Datetime = *upd.Datetime
		}
		if upd.Minutes != nil {
			recs[i].Minutes = *upd.Minutes
		}
		if upd.Intensity != nil {
			recs[i].Intensity = *upd.Intensity
		}
		rec := recs[i]
		return &rec, nil
	}
	return nil, models.NewNotFoundError("activity record", id)
}

func (c *Client) DeleteActivity(ctx context.Context, token, id string) error {
	if err := c.delay(ctx, 60, 150); err != nil {
		return err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	c.db.activity[uid] = deleteRecord(c.db.activity[uid], func(r models.ActivityRecord) bool { return r.ID == id })
	return nil
}

// SortActivityByDuration reorders the owner's activity collection by
// descending minutes. The effect is only observable through a re-fetch.
func (c *Client) SortActivityByDuration(ctx context.Context, token string) error {
	if err := c.delay(ctx, 50, 120); err != nil {
		return err
	}
	uid, err := c.authorize(token)
	if err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	recs := c.db.activity[uid]
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Minutes > recs[j].Minutes })
	return nil
}

// GetCustomCategories returns the shared category list. The mock does not
// scope custom tracking per user.
func (c *Client) GetCustomCategories(ctx context.Context, _ string) ([]models.Category, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	out := make([]models.Category, len(c.db.categories))
	copy(out, c.db.categories)
	return out, nil
}

func (c *Client) GetCustomData(ctx context.Context, _ string, categoryID string) ([]models.CustomItem, error) {
	if err := c.delay(ctx, 80, 180); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	out := make([]models.CustomItem, len(c.db.customItems[categoryID]))
	copy(out, c.db.customItems[categoryID])
	return out, nil
}

// CreateCustomCategory is idempotent: an existing name returns the existing
// category and the list length does not change.
func (c *Client) CreateCustomCategory(ctx context.Context, _ string, categoryName string) (*models.Category, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	if err := validation.ValidateCategoryName(categoryName); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	if existing := c.db.categoryByName(categoryName); existing != nil {
		cat := *existing
		return &cat, nil
	}
	cat := c.db.addCategory(categoryName)
	return &cat, nil
}

func (c *Client) AddCustomItem(ctx context.Context, _ string, categoryID, datetime, note string) (*models.CustomItem, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}
	if err := validation.ValidateDatetime(datetime); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	item := models.CustomItem{ID: uuid.NewString(), CategoryID: categoryID, Datetime: datetime, Note: note}
	c.db.customItems[categoryID] = append(c.db.customItems[categoryID], item)
	return &item, nil
}

func (c *Client) UpdateCustomItem(ctx context.Context, _ string, categoryID, itemID string, upd models.CustomItemUpdate) (*models.CustomItem, error) {
	if err := c.delay(ctx, 60, 150); err != nil {
		return nil, err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	items := c.db.customItems[categoryID]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if upd.Datetime != nil {
			items[i].Datetime = *upd.Datetime
		}
		if upd.Note != nil {
			items[i].Note = *upd.Note
		}
		item := items[i]
		return &item, nil
	}
	return nil, models.NewNotFoundError("custom item", itemID)
}

func (c *Client) DeleteCustomItem(ctx context.Context, _ string, categoryID, itemID string) error {
	if err := c.delay(ctx, 60, 150); err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	c.db.customItems[categoryID] = deleteRecord(c.db.customItems[categoryID],
		func(it models.CustomItem) bool { return it.ID == itemID })
	return nil
}

// DeleteCustomCategory removes a category and its items. The argument may be
// the category ID or its name; the fixture data uses names as identifiers in
// some callers.
func (c *Client) DeleteCustomCategory(ctx context.Context, _ string, categoryID string) error {
	if err := c.delay(ctx, 50, 120); err != nil {
		return err
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	kept := c.db.categories[:0]
	for _, cat := range c.db.categories {
		if cat.ID == categoryID || cat.CategoryName == categoryID {
			delete(c.db.customItems, cat.ID)
			continue
		}
		kept = append(kept, cat)
	}
	c.db.categories = kept
	delete(c.db.customItems, categoryID)
	return nil
}

// deleteRecord filters a record slice in allocation order. Deleting a
// missing ID is not an error.
func deleteRecord[T any](recs []T, match func(T) bool) []T {
	out := recs[:0]
	for _, r := range recs {
		if !match(r) {
			out = append(out, r)
		}
	}
	return out
}
