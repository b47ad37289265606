package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"tutormatch/internal/domain"
)

func setupSlotRepo(t *testing.T) *SlotRepository {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	// A single pooled connection keeps every goroutine on the same
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&SlotModel{}))
	return NewSlotRepository(db)
}

func createOpenSlot(t *testing.T, repo *SlotRepository) *domain.Slot {
	t.Helper()
	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)
	s := &domain.Slot{TutorID: 1, Start: start, End: start.Add(time.Hour)}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestSlotRepository_Reserve_CompareAndSet(t *testing.T) {
	repo := setupSlotRepo(t)
	s := createOpenSlot(t, repo)
	ctx := context.Background()

	reserved, err := repo.Reserve(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, reserved.IsBooked)

	_, err = repo.Reserve(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestSlotRepository_Reserve_MissingSlot(t *testing.T) {
	repo := setupSlotRepo(t)

	_, err := repo.Reserve(context.Background(), 12345)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestSlotRepository_Reserve_AtMostOneWinner(t *testing.T) {
	repo := setupSlotRepo(t)
	s := createOpenSlot(t, repo)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Reserve(context.Background(), s.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			losses++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
}

func TestSlotRepository_Release_Idempotent(t *testing.T) {
	repo := setupSlotRepo(t)
	s := createOpenSlot(t, repo)
	ctx := context.Background()

	_, err := repo.Reserve(ctx, s.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Release(ctx, s.ID))
	require.NoError(t, repo.Release(ctx, s.ID))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBooked)

	// Released slots are reservable again.
	_, err = repo.Reserve(ctx, s.ID)
	assert.NoError(t, err)
}

func TestSlotRepository_List_FiltersAndOrders(t *testing.T) {
	repo := setupSlotRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)
	later := &domain.Slot{TutorID: 1, Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)}
	earlier := &domain.Slot{TutorID: 1, Start: base, End: base.Add(time.Hour)}
	other := &domain.Slot{TutorID: 2, Start: base, End: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))
	require.NoError(t, repo.Create(ctx, other))

	_, err := repo.Reserve(ctx, later.ID)
	require.NoError(t, err)

	open, err := repo.List(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, earlier.ID, open[0].ID)

	all, err := repo.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Start.Before(all[1].Start))
}
