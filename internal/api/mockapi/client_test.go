package mockapi

import (
	"context"
	"testing"

	"vitalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	return New(WithoutLatency())
}

func loginAlice(t *testing.T, c *Client) string {
	t.Helper()
	resp, err := c.Login(context.Background(), models.Credentials{Name: "alice", Password: "password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("seeded user with fixture password", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		resp, err := c.Login(context.Background(), models.Credentials{Name: "alice", Password: "password"})
		require.NoError(t, err)
		assert.Equal(t, "fake-token-1", resp.Token)
	})

	t.Run("wrong password is rejected without a token", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		resp, err := c.Login(context.Background(), models.Credentials{Name: "alice", Password: "wrong"})
		require.Error(t, err)
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeUnauthorized})
		assert.Empty(t, resp.Token)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		_, err := c.Login(context.Background(), models.Credentials{Name: "mallory", Password: "password"})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeUnauthorized})
	})

	t.Run("sentinel error user fails with a server error", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		_, err := c.Login(context.Background(), models.Credentials{Name: "error", Password: "password"})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeAPI})
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		_, err := c.Login(context.Background(), models.Credentials{Name: "", Password: ""})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeValidation})
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("new user can log in with own password", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		resp, err := c.Register(context.Background(), models.RegisterInput{
			Name: "carol", Password: "s3cret", Age: 25, WeightKg: 55, HeightM: 1.60, Gender: models.GenderFemale,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		again, err := c.Login(context.Background(), models.Credentials{Name: "carol", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, resp.Token, again.Token)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		_, err := c.Register(context.Background(), models.RegisterInput{Name: "alice", Password: "x"})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeConflict})
	})
}

func TestGetProfileAndBMI(t *testing.T) {
	t.Parallel()

	t.Run("profile round trip", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		profile, err := c.GetProfile(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Name)
		assert.Equal(t, 60.0, profile.WeightKg)
		assert.Equal(t, 1.65, profile.HeightM)
	})

	t.Run("bmi is weight over height squared to one decimal", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		bmi, err := c.GetBMI(context.Background(), token)
		require.NoError(t, err)
		// 60 / (1.65 * 1.65) = 22.038..., rounds to 22.0
		assert.Equal(t, 22.0, bmi)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		_, err := c.GetProfile(context.Background(), "bogus")
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeUnauthorized})
	})
}

func TestWaterCRUD(t *testing.T) {
	t.Parallel()

	t.Run("add and list", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)

		rec, err := c.AddWater(context.Background(), token, "2026-08-28T09:30", 250)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)

		all, err := c.GetAllWater(context.Background(), token)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 250.0, all[0].AmountMl)
		assert.Equal(t, "2026-08-28T09:30", all[0].Datetime)
	})

	t.Run("negative amount fails validation", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		_, err := c.AddWater(context.Background(), token, "2026-08-28T09:30", -1)
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeValidation})
	})

	t.Run("partial update preserves unspecified fields", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		rec, err := c.AddWater(context.Background(), token, "2026-08-28T09:30", 250)
		require.NoError(t, err)

		updated, err := c.UpdateWater(context.Background(), token, rec.ID,
			models.WaterUpdate{AmountMl: models.Ptr(500.0)})
		require.NoError(t, err)
		assert.Equal(t, "2026-08-28T09:30", updated.Datetime, "datetime should be unchanged when not provided")
		assert.Equal(t, 500.0, updated.AmountMl)
	})

	t.Run("update of missing id is not found", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		_, err := c.UpdateWater(context.Background(), token, "nope", models.WaterUpdate{})
		assert.ErrorIs(t, err, &models.AppError{Code: models.CodeNotFound})
	})

	t.Run("delete removes the record", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		token := loginAlice(t, c)
		rec, err := c.AddWater(context.Background(), token, "2026-08-28T09:30", 250)
		require.NoError(t, err)

		require.NoError(t, c.DeleteWater(context.Background(), token, rec.ID))
		all, err := c.GetAllWater(context.Background(), token)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("collections are per user", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		aliceToken := loginAlice(t, c)
		bobResp, err := c.Login(context.Background(), models.Credentials{Name: "bob", Password: "password"})
		require.NoError(t, err)

		_, err = c.AddWater(context.Background(), aliceToken, "2026-08-28T09:30", 250)
		require.NoError(t, err)

		bobWater, err := c.GetAllWater(context.Background(), bobResp.Token)
		require.NoError(t, err)
		assert.Empty(t, bobWater)
	})
}

func TestSortActivityByDuration(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)
	token := loginAlice(t, c)
	ctx := context.Background()

	for _, minutes := range []float64{20, 60, 45} {
		_, err := c.AddActivity(ctx, token, "2026-08-28T07:00", minutes, models.IntensityModerate)
		require.NoError(t, err)
	}

	require.NoError(t, c.SortActivityByDuration(ctx, token))

	all, err := c.GetAllActivity(ctx, token)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{60, 45, 20}, []float64{all[0].Minutes, all[1].Minutes, all[2].Minutes})
}

func TestCustomCategories(t *testing.T) {
	t.Parallel()

	t.Run("duplicate create returns the existing category", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		ctx := context.Background()

		before, err := c.GetCustomCategories(ctx, "")
		require.NoError(t, err)

		first, err := c.CreateCustomCategory(ctx, "", "Supplements")
		require.NoError(t, err)
		second, err := c.CreateCustomCategory(ctx, "", "Supplements")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		after, err := c.GetCustomCategories(ctx, "")
		require.NoError(t, err)
		assert.Len(t, after, len(before)+1)
	})

	t.Run("item lifecycle under a category", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		ctx := context.Background()

		cat, err := c.CreateCustomCategory(ctx, "", "Mood")
		require.NoError(t, err)

		item, err := c.AddCustomItem(ctx, "", cat.ID, "2026-08-28T12:00", "feeling fine")
		require.NoError(t, err)

		updated, err := c.UpdateCustomItem(ctx, "", cat.ID, item.ID,
			models.CustomItemUpdate{Note: models.Ptr("feeling great")})
		require.NoError(t, err)
		assert.Equal(t, "2026-08-28T12:00", updated.Datetime)
		assert.Equal(t, "feeling great", updated.Note)

		require.NoError(t, c.DeleteCustomItem(ctx, "", cat.ID, item.ID))
		items, err := c.GetCustomData(ctx, "", cat.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("deleting a category drops its items", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t)
		ctx := context.Background()

		cat, err := c.CreateCustomCategory(ctx, "", "Caffeine")
		require.NoError(t, err)
		_, err = c.AddCustomItem(ctx, "", cat.ID, "2026-08-28T08:00", "espresso")
		require.NoError(t, err)

		require.NoError(t, c.DeleteCustomCategory(ctx, "", cat.ID))

		cats, err := c.GetCustomCategories(ctx, "")
		require.NoError(t, err)
		for _, got := range cats {
			assert.NotEqual(t, cat.ID, got.ID)
		}
		items, err := c.GetCustomData(ctx, "", cat.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestWithDemoData(t *testing.T) {
	t.Parallel()

	c := New(WithoutLatency(), WithDemoData())
	token := loginAlice(t, c)

	water, err := c.GetAllWater(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, water)

	sleep, err := c.GetAllSleep(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, sleep)
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	c := New() // latency enabled so the delay path is exercised
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Login(ctx, models.Credentials{Name: "alice", Password: "password"})
	assert.ErrorIs(t, err, context.Canceled)
}
