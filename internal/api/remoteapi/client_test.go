package remoteapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL), srv
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns the token from the response body", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var creds models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "alice", creds.Name)

			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
		})

		resp, err := c.Login(context.Background(), models.Credentials{Name: "alice", Password: "password"})
		require.NoError(t, err)
		assert.Equal(t, "tok-123", resp.Token)
	})

	t.Run("missing token in a 200 body is an error", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		})

		_, err := c.Login(context.Background(), models.Credentials{Name: "alice", Password: "password"})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeAPI})
	})
}

func TestErrorMessagePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("server message field wins", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "amountMl must not be negative"})
		})

		_, err := c.GetAllWater(context.Background(), "tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amountMl must not be negative")
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeValidation})
	})

	t.Run("status text when no message field", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.GetAllWater(context.Background(), "tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Internal Server Error")
	})

	t.Run("generic message for unknown status", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(599)
		})

		_, err := c.GetAllWater(context.Background(), "tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API error")
	})

	t.Run("401 maps to unauthorized", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.GetProfile(context.Background(), "expired")
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeUnauthorized})
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.UpdateWater(context.Background(), "tok", "missing", models.WaterUpdate{})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeNotFound})
	})

	t.Run("404 carries the server message verbatim", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "water record w1 not found"}`))
		})

		_, err := c.UpdateWater(context.Background(), "tok", "w1", models.WaterUpdate{})
		require.ErrorIs(t, err, &models.AppError{Code: models.CodeNotFound})
		assert.EqualError(t, err, "water record w1 not found")
	})
}

func TestUnparseableSuccessBodyIsEmpty(t *testing.T) {
	t.Parallel()

	c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	recs, err := c.GetAllWater(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestBearerHeader(t *testing.T) {
	t.Parallel()

	t.Run("attached on authenticated operations", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]models.WaterRecord{})
		})

		_, err := c.GetAllWater(context.Background(), "tok-9")
		require.NoError(t, err)
	})

	t.Run("omitted on category reads without a token", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]string{})
		})

		_, err := c.GetCustomCategories(context.Background(), "")
		require.NoError(t, err)
	})
}

func TestRecordRoutes(t *testing.T) {
	t.Parallel()

	t.Run("add water posts datetime and amount", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/waters", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 250.0, body["amountMl"])
			_ = json.NewEncoder(w).Encode(models.WaterRecord{ID: "w1", Datetime: body["datetime"].(string), AmountMl: 250})
		})

		rec, err := c.AddWater(context.Background(), "tok", "2026-08-28T09:30", 250)
		require.NoError(t, err)
		assert.Equal(t, "w1", rec.ID)
	})

	t.Run("partial update omits nil fields", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/waters/w1", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, hasDatetime := body["datetime"]
			assert.False(t, hasDatetime, "nil datetime should not be sent")
			assert.Equal(t, 500.0, body["amountMl"])
			w.WriteHeader(http.StatusNoContent)
		})

		rec, err := c.UpdateWater(context.Background(), "tok", "w1", models.WaterUpdate{AmountMl: models.Ptr(500.0)})
		require.NoError(t, err)
		assert.Equal(t, "w1", rec.ID)
	})

	t.Run("sort activity uses the query parameter", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/activities", r.URL.Path)
			assert.Equal(t, "duration", r.URL.Query().Get("sortBy"))
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, c.SortActivityByDuration(context.Background(), "tok"))
	})
}

func TestCategoryNormalization(t *testing.T) {
	t.Parallel()

	t.Run("object payload", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode([]models.Category{{ID: "cat-1", CategoryName: "Food"}})
		})

		cats, err := c.GetCustomCategories(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, cats, 1)
		assert.Equal(t, "cat-1", cats[0].ID)
		assert.Equal(t, "Food", cats[0].CategoryName)
	})

	t.Run("string payload uses the name as the identifier", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode([]string{"Food", "Medications"})
		})

		cats, err := c.GetCustomCategories(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, cats, 2)
		assert.Equal(t, "Food", cats[0].ID)
		assert.Equal(t, "Medications", cats[1].CategoryName)
	})
}

func TestUnsupportedOperations(t *testing.T) {
	t.Parallel()

	c := New("http://localhost:0")

	assert.ErrorIs(t, c.DeleteSleep(context.Background(), "tok", "s1"), models.ErrNotSupported)
	assert.ErrorIs(t, c.DeleteCustomCategory(context.Background(), "tok", "cat-1"), models.ErrNotSupported)
}
