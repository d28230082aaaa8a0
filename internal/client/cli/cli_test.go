package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/nilesh2630/floorplan/internal/client/api"
	"github.com/nilesh2630/floorplan/internal/client/iocli"
	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/client/storage/boltdb"
	"github.com/nilesh2630/floorplan/internal/client/sync"
	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/pkg/api"
)

func newTestIO() (*iocli.IOMock, *strings.Builder) {
	out := &strings.Builder{}
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
	}
	return mock, out
}

func setupCli(t *testing.T, apiMock *sync.APIClientMock) (*Cli, *boltdb.Storage, *strings.Builder) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	io, out := newTestIO()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	return New(apiMock, store, io, logger), store, out
}

func saveTestSession(t *testing.T, store *boltdb.Storage) {
	t.Helper()

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{
		Email:       "alice@example.com",
		AccessToken: "token-abc",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}))
}

func TestRun_UnknownCommand(t *testing.T) {
	cli, _, _ := setupCli(t, &sync.APIClientMock{})

	err := cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunStatus_NotAuthenticated(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", httpClient.ErrUnavailable)
		},
	}
	cli, _, out := setupCli(t, apiMock)

	require.NoError(t, cli.Run(context.Background(), "status", nil))

	assert.Contains(t, out.String(), "Not authenticated")
	assert.Contains(t, out.String(), "Server: unreachable")
}

func TestRunStatus_PendingChanges(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error { return nil },
	}
	cli, store, out := setupCli(t, apiMock)
	saveTestSession(t, store)

	_, err := store.Enqueue(context.Background(), models.Change{
		TargetID:  "plan-1",
		Kind:      models.ChangeUpdate,
		Delta:     models.Payload{"x": float64(1)},
		Timestamp: 100,
	})
	require.NoError(t, err)

	require.NoError(t, cli.Run(context.Background(), "status", nil))

	assert.Contains(t, out.String(), "Session: Authenticated")
	assert.Contains(t, out.String(), "Server: reachable")
	assert.Contains(t, out.String(), "Pending sync: 1 change(s)")
}

func TestRunList_OfflineFallsBackToCache(t *testing.T) {
	apiMock := &sync.APIClientMock{
		ListFloorPlansFunc: func(ctx context.Context, accessToken string) ([]api.FloorPlan, error) {
			return nil, fmt.Errorf("%w: timeout", httpClient.ErrUnavailable)
		},
	}
	cli, store, out := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()
	require.NoError(t, store.SavePlan(ctx, &models.Document{ID: "plan-1", Name: "Office", Version: 3}))
	require.NoError(t, store.SavePlan(ctx, &models.Document{ID: "plan-2", Name: "Warehouse", Version: 1}))

	require.NoError(t, cli.Run(ctx, "list", nil))

	output := out.String()
	assert.Contains(t, output, "cached floor plans")
	assert.Contains(t, output, "Office")
	assert.Contains(t, output, "Warehouse")
	assert.Contains(t, output, "Found 2 floor plan(s)")
}

func TestRunList_RefreshesCache(t *testing.T) {
	apiMock := &sync.APIClientMock{
		ListFloorPlansFunc: func(ctx context.Context, accessToken string) ([]api.FloorPlan, error) {
			assert.Equal(t, "token-abc", accessToken)
			return []api.FloorPlan{
				{ID: "plan-1", Name: "Office", Version: 4, LastModifiedAt: time.Now().UTC()},
			}, nil
		},
	}
	cli, store, out := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()
	require.NoError(t, cli.Run(ctx, "list", nil))

	assert.Contains(t, out.String(), "Office")

	cached, err := store.GetPlan(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), cached.Version)
}

func TestRunCreate_OfflineQueuesChange(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", httpClient.ErrUnavailable)
		},
	}
	cli, store, out := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()
	require.NoError(t, cli.Run(ctx, "create", []string{"Office 4F", `{"walls": 12}`}))

	assert.Contains(t, out.String(), "Server unreachable")

	queued, err := store.DrainInOrder(ctx)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, models.ChangeCreate, queued[0].Change.Kind)
	assert.Equal(t, models.PendingTargetID, queued[0].Change.TargetID)
	assert.Equal(t, "Office 4F", queued[0].Change.Name)
	assert.Equal(t, models.Payload{"walls": float64(12)}, queued[0].Change.Delta)
	assert.NotZero(t, queued[0].Change.Timestamp)
}

func TestRunCreate_ClockCatchesUpToQueuedChanges(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", httpClient.ErrUnavailable)
		},
	}
	cli, store, _ := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()

	// A change persisted by a previous run carries a timestamp ahead of
	// the current wall clock (the wall clock stepped backwards since).
	future := time.Now().Add(time.Hour).UnixMilli()
	_, err := store.Enqueue(ctx, models.Change{
		TargetID:  "plan-1",
		Kind:      models.ChangeUpdate,
		Delta:     models.Payload{"x": float64(1)},
		Timestamp: future,
	})
	require.NoError(t, err)

	require.NoError(t, cli.Run(ctx, "create", []string{"Office", `{}`}))

	// The new change must still sort after the persisted one
	queued, err := store.DrainInOrder(ctx)
	require.NoError(t, err)
	require.Len(t, queued, 2)
	assert.Greater(t, queued[1].Change.Timestamp, future)
}

func TestRunCreate_RejectsEmptyName(t *testing.T) {
	cli, store, _ := setupCli(t, &sync.APIClientMock{})
	saveTestSession(t, store)

	err := cli.Run(context.Background(), "create", []string{"   "})
	require.Error(t, err)

	n, err2 := store.Len(context.Background())
	require.NoError(t, err2)
	assert.Zero(t, n)
}

func TestRunEdit_OnlineAppliesImmediately(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error { return nil },
		GetFloorPlanFunc: func(ctx context.Context, accessToken, id string) (*api.FloorPlan, error) {
			return &api.FloorPlan{
				ID:      id,
				Name:    "Office",
				Payload: map[string]any{"walls": float64(12), "scale": float64(50)},
				Version: 2,
			}, nil
		},
		UpdateFloorPlanFunc: func(ctx context.Context, accessToken, id string, req api.UpdateFloorPlanRequest) (*api.FloorPlan, error) {
			return &api.FloorPlan{ID: id, Name: req.Name, Payload: req.Payload, Version: req.ExpectedVersion + 1}, nil
		},
	}
	cli, store, out := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()
	require.NoError(t, cli.Run(ctx, "edit", []string{"plan-1", `{"scale": 100}`}))

	assert.Contains(t, out.String(), "Applied:  1 change(s)")

	// Applied right away: nothing left queued
	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	calls := apiMock.UpdateFloorPlanCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(2), calls[0].Req.ExpectedVersion)
	assert.Equal(t, map[string]any{"walls": float64(12), "scale": float64(100)}, calls[0].Req.Payload)
}

func TestRunDelete_DropsSupersededEdits(t *testing.T) {
	apiMock := &sync.APIClientMock{
		HealthFunc: func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", httpClient.ErrUnavailable)
		},
	}
	cli, store, _ := setupCli(t, apiMock)
	saveTestSession(t, store)

	ctx := context.Background()
	_, err := store.Enqueue(ctx, models.Change{
		TargetID:  "plan-1",
		Kind:      models.ChangeUpdate,
		Delta:     models.Payload{"x": float64(1)},
		Timestamp: 100,
	})
	require.NoError(t, err)

	require.NoError(t, cli.Run(ctx, "delete", []string{"plan-1"}))

	queued, err := store.DrainInOrder(ctx)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, models.ChangeDelete, queued[0].Change.Kind)
}

func TestRunSync_NothingQueued(t *testing.T) {
	cli, store, out := setupCli(t, &sync.APIClientMock{})
	saveTestSession(t, store)

	require.NoError(t, cli.Run(context.Background(), "sync", nil))
	assert.Contains(t, out.String(), "Nothing to sync")
}

func TestRunSync_RequiresLogin(t *testing.T) {
	cli, _, _ := setupCli(t, &sync.APIClientMock{})

	err := cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestRunSync_ExpiredToken(t *testing.T) {
	cli, store, _ := setupCli(t, &sync.APIClientMock{})

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{
		Email:       "alice@example.com",
		AccessToken: "token-abc",
		ExpiresAt:   time.Now().Add(-time.Minute).Unix(),
	}))

	err := cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
