// Package remoteapi is the HTTP-backed implementation of the api.Client
// contract. Each operation maps to one REST request against a configurable
// base URL, with the bearer token in the Authorization header where
// required.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vitalog/internal/api"
	"vitalog/internal/models"
	"vitalog/internal/observability"
)

const defaultTimeout = 30 * time.Second

// Client implements api.Client over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *observability.ClientLogger
}

var _ api.Client = (*Client)(nil)

// Option configures a remote client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use this.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a remote client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        observability.NewClientLogger("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and applies the shared response policy: a
// non-success status becomes an AppError carrying the server-provided
// message when present, else the status text, else a generic message. A
// success body is parsed as JSON when non-empty; a body that fails to parse
// is treated as empty rather than propagated, and logged so malformed
// payloads remain observable.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, models.NewAPIError("encoding request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, models.NewAPIError("building request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.LogError(ctx, method+" "+path, err)
		return nil, models.NewAPIError("request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError("reading response body", err)
	}

	var raw json.RawMessage
	if len(data) > 0 {
		if json.Valid(data) {
			raw = json.RawMessage(data)
		} else if resp.StatusCode < 300 {
			c.log.LogCall(ctx, method+" "+path, map[string]interface{}{
				"status": resp.StatusCode,
				"note":   "unparseable success body treated as empty",
			})
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError maps a non-success response onto the error taxonomy.
func (c *Client) statusError(status int, raw json.RawMessage) error {
	message := ""
	if raw != nil {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil {
			message = payload.Message
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "API error"
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.NewUnauthorizedError(message)
	case http.StatusNotFound:
		return &models.AppError{Code: models.CodeNotFound, Message: message}
	case http.StatusConflict:
		return models.NewConflictError(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return models.NewValidationError(message)
	default:
		return models.NewAPIError(message, nil)
	}
}

// decode unmarshals a non-empty response body into v. An empty body leaves
// v at its zero value.
func decode(raw json.RawMessage, v any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return models.NewAPIError("decoding response", err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/login", "", creds)
	if err != nil {
		return models.AuthResponse{}, err
	}
	var resp models.AuthResponse
	if err := decode(raw, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Token == "" {
		return models.AuthResponse{}, models.NewAPIError("login failed: no token returned", nil)
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, in models.RegisterInput) (models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/register", "", in)
	if err != nil {
		return models.AuthResponse{}, err
	}
	var resp models.AuthResponse
	if err := decode(raw, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Token == "" {
		return models.AuthResponse{}, models.NewAPIError("register failed: no token returned", nil)
	}
	return resp, nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/user/profile", token, nil)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := decode(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetBMI(ctx context.Context, token string) (float64, error) {
	raw, err := c.do(ctx, http.MethodGet, "/user/bmi", token, nil)
	if err != nil {
		return 0, err
	}
	var resp struct {
		BMI float64 `json:"bmi"`
	}
	if err := decode(raw, &resp); err != nil {
		return 0, err
	}
	return resp.BMI, nil
}

func (c *Client) AddWater(ctx context.Context, token, datetime string, amountMl float64) (*models.WaterRecord, error) {
	body := map[string]any{"datetime": datetime, "amountMl": amountMl}
	raw, err := c.do(ctx, http.MethodPost, "/waters", token, body)
	if err != nil {
		return nil, err
	}
	rec := models.WaterRecord{Datetime: datetime, AmountMl: amountMl}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GetAllWater(ctx context.Context, token string) ([]models.WaterRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/waters", token, nil)
	if err != nil {
		return nil, err
	}
	var recs []models.WaterRecord
	if err := decode(raw, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) UpdateWater(ctx context.Context, token, id string, upd models.WaterUpdate) (*models.WaterRecord, error) {
	raw, err := c.do(ctx, http.MethodPatch, "/waters/"+url.PathEscape(id), token, upd)
	if err != nil {
		return nil, err
	}
	rec := models.WaterRecord{ID: id}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteWater(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/waters/"+url.PathEscape(id), token, nil)
	return err
}

func (c *Client) AddSleep(ctx context.Context, token, datetime string, hours float64) (*models.SleepRecord, error) {
	body := map[string]any{"datetime": datetime, "hours": hours}
	raw, err := c.do(ctx, http.MethodPost, "/sleeps", token, body)
	if err != nil {
		return nil, err
	}
	rec := models.SleepRecord{Datetime: datetime, Hours: hours}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GetAllSleep(ctx context.Context, token string) ([]models.SleepRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/sleeps", token, nil)
	if err != nil {
		return nil, err
	}
	var recs []models.SleepRecord
	if err := decode(raw, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) UpdateSleep(ctx context.Context, token, id string, upd models.SleepUpdate) (*models.SleepRecord, error) {
	raw, err := c.do(ctx, http.MethodPatch, "/sleeps/"+url.PathEscape(id), token, upd)
	if err != nil {
		return nil, err
	}
	rec := models.SleepRecord{ID: id}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteSleep is absent from the remote surface; the backend exposes no
// DELETE /sleeps endpoint.
func (c *Client) DeleteSleep(_ context.Context, _, _ string) error {
	return models.NotSupported("DeleteSleep")
}

func (c *Client) AddActivity(ctx context.Context, token, datetime string, minutes float64, intensity string) (*models.ActivityRecord, error) {
	body := map[string]any{"datetime": datetime, "minutes": minutes, "intensity": intensity}
	raw, err := c.do(ctx, http.MethodPost, "/activities", token, body)
	if err != nil {
		return nil, err
	}
	rec := models.ActivityRecord{Datetime: datetime, Minutes: minutes, Intensity: intensity}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GetAllActivity(ctx context.Context, token string) ([]models.ActivityRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/activities", token, nil)
	if err != nil {
		return nil, err
	}
	var recs []models.ActivityRecord
	if err := decode(raw, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) UpdateActivity(ctx context.Context, token, id string, upd models.ActivityUpdate) (*models.ActivityRecord, error) {
	raw, err := c.do(ctx, http.MethodPatch, "/activities/"+url.PathEscape(id), token, upd)
	if err != nil {
		return nil, err
	}
	rec := models.ActivityRecord{ID: id}
	if err := decode(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteActivity(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/activities/"+url.PathEscape(id), token, nil)
	return err
}

// SortActivityByDuration asks the server to reorder the collection in
// place. The response body, if any, is discarded; callers re-fetch.
func (c *Client) SortActivityByDuration(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodGet, "/activities?sortBy=duration", token, nil)
	return err
}

// GetCustomCategories normalizes the two shapes the list endpoint may
// return: plain name strings, or category objects. For name-only payloads
// the name doubles as the identifier, matching how the category endpoints
// are addressed by name.
func (c *Client) GetCustomCategories(ctx context.Context, token string) ([]models.Category, error) {
	raw, err := c.do(ctx, http.MethodGet, "/category/list", token, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var cats []models.Category
	if err := json.Unmarshal(raw, &cats); err == nil {
		for i := range cats {
			if cats[i].ID == "" {
				cats[i].ID = cats[i].CategoryName
			}
		}
		return cats, nil
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, models.NewAPIError("decoding category list", err)
	}
	cats = make([]models.Category, 0, len(names))
	for _, name := range names {
		cats = append(cats, models.Category{ID: name, CategoryName: name})
	}
	return cats, nil
}

func (c *Client) GetCustomData(ctx context.Context, token, categoryID string) ([]models.CustomItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/category/"+url.PathEscape(categoryID)+"/list", token, nil)
	if err != nil {
		return nil, err
	}
	var items []models.CustomItem
	if err := decode(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateCustomCategory(ctx context.Context, token, categoryName string) (*models.Category, error) {
	body := map[string]any{"categoryName": categoryName}
	raw, err := c.do(ctx, http.MethodPost, "/category/create", token, body)
	if err != nil {
		return nil, err
	}
	cat := models.Category{ID: categoryName, CategoryName: categoryName}
	if err := decode(raw, &cat); err != nil {
		return nil, err
	}
	if cat.ID == "" {
		cat.ID = cat.CategoryName
	}
	return &cat, nil
}

func (c *Client) AddCustomItem(ctx context.Context, token, categoryID, datetime, note string) (*models.CustomItem, error) {
	body := map[string]any{"datetime": datetime, "note": note}
	raw, err := c.do(ctx, http.MethodPost, "/category/"+url.PathEscape(categoryID)+"/add", token, body)
	if err != nil {
		return nil, err
	}
	item := models.CustomItem{CategoryID: categoryID, Datetime: datetime, Note: note}
	if err := decode(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCustomItem(ctx context.Context, token, categoryID, itemID string, upd models.CustomItemUpdate) (*models.CustomItem, error) {
	path := "/category/" + url.PathEscape(categoryID) + "/" + url.PathEscape(itemID)
	raw, err := c.do(ctx, http.MethodPatch, path, token, upd)
	if err != nil {
		return nil, err
	}
	item := models.CustomItem{ID: itemID, CategoryID: categoryID}
	if err := decode(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteCustomItem(ctx context.Context, token, categoryID, itemID string) error {
	path := "/category/" + url.PathEscape(categoryID) + "/" + url.PathEscape(itemID)
	_, err := c.do(ctx, http.MethodDelete, path, token, nil)
	return err
}

// DeleteCustomCategory is absent from the remote surface; the backend
// exposes no category-delete endpoint.
func (c *Client) DeleteCustomCategory(_ context.Context, _, _ string) error {
	return models.NotSupported("DeleteCustomCategory")
}
