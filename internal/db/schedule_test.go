package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horaires/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	database, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestCreateAndGetClient(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	client, err := database.CreateClient(ctx, "Boulangerie Martin")
	require.NoError(t, err)
	assert.Equal(t, "Boulangerie Martin", client.Name)
	assert.NotZero(t, client.ID)

	got, err := database.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	_, err = database.GetClient(ctx, 9999)
	assert.Error(t, err)
}

func TestListClients(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	_, err := database.CreateClient(ctx, "Zoé Fleurs")
	require.NoError(t, err)
	_, err = database.CreateClient(ctx, "Atelier Bois")
	require.NoError(t, err)

	clients, err := database.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Atelier Bois", clients[0].Name) // ordered by name
}

func TestOpeningHoursRoundTrip(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	client, err := database.CreateClient(ctx, "Café du Port")
	require.NoError(t, err)

	// Unconfigured client gets the all-unset default.
	week, err := database.GetOpeningHours(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWeekSchedule(), week)

	week.Monday = model.DaySchedule{IsOpen: false}
	week.Tuesday = model.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}
	require.NoError(t, database.SaveOpeningHours(ctx, client.ID, week))

	got, err := database.GetOpeningHours(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, week, got)
}

func TestSaveOpeningHours_UnknownClient(t *testing.T) {
	database := newTestDB(t)

	err := database.SaveOpeningHours(context.Background(), 42, model.DefaultWeekSchedule())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestVacationPeriodsRoundTrip(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	client, err := database.CreateClient(ctx, "Pressing Nord")
	require.NoError(t, err)

	periods, err := database.GetVacationPeriods(ctx, client.ID)
	require.NoError(t, err)
	assert.Empty(t, periods)

	saved := []model.VacationPeriod{
		{ID: "p1", InputType: model.WeeksRange, Year: 2024, StartWeek: 27, EndWeek: 28},
		{ID: "p2", InputType: model.WeeksRange, IsRecurring: true, StartWeek: 51, EndWeek: 2},
	}
	require.NoError(t, database.SaveVacationPeriods(ctx, client.ID, saved))

	got, err := database.GetVacationPeriods(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestMarketDaysRoundTrip(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	client, err := database.CreateClient(ctx, "Fromagerie Sud")
	require.NoError(t, err)

	market := model.MarketDaySchedule{
		model.Wednesday: {{Start: "07:00", End: "13:00"}},
		model.Saturday:  {{Start: "07:00", End: "13:00"}, {Start: "15:00", End: "18:00"}},
	}
	require.NoError(t, database.SaveMarketDays(ctx, client.ID, market))

	got, err := database.GetMarketDays(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, market, got)
}
