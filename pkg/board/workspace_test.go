package board

import (
	"context"
	"testing"
	"time"

	"gearguard/pkg/client"
	"gearguard/pkg/querycache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(api *memoryAPI, confirm Confirmer, notifier Notifier) *Workspace {
	return NewWorkspace(api, WorkspaceConfig{
		Cache:     querycache.New(),
		Confirmer: confirm,
		Notifier:  notifier,
		Clock:     fixedClock(refNow),
	})
}

func TestWorkspaceCreateThenFetch(t *testing.T) {
	api := newMemoryAPI()
	ws := newTestWorkspace(api, nil, nil)
	ctx := context.Background()

	before, err := ws.Requests(ctx, client.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, before)

	id, err := ws.Create(ctx, client.CreateRequestInput{
		Subject:           "Leaking oil",
		RequestType:       client.RequestTypeCorrective,
		EquipmentID:       3,
		MaintenanceTeamID: 1,
	})
	require.NoError(t, err)

	columns, err := ws.Board(ctx, client.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, columns[0].Items, 1)
	assert.Equal(t, id, columns[0].Items[0].ID)
	assert.Equal(t, client.StatusNew, columns[0].Items[0].Status)
	assert.Equal(t, "Leaking oil", columns[0].Items[0].Subject)
	assert.Equal(t, 2, api.count("list"))
}

func TestWorkspaceReadsAreCached(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusNew})
	ws := newTestWorkspace(api, nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := ws.List(ctx, client.RequestFilter{})
		require.NoError(t, err)
		_, err = ws.Dashboard(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, api.count("list"))
	assert.Equal(t, 1, api.count("dashboard"))
}

func TestWorkspaceMoveRefreshesDashboard(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusNew})
	ws := newTestWorkspace(api, nil, nil)
	ctx := context.Background()

	stats, err := ws.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Requests.ByStatus.New)
	_, err = ws.Board(ctx, client.RequestFilter{})
	require.NoError(t, err)

	out, err := ws.Move(ctx, 1, client.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	stats, err = ws.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Requests.ByStatus.New)
	assert.Equal(t, int64(1), stats.Requests.ByStatus.InProgress)
	assert.Equal(t, 2, api.count("dashboard"))

	columns, err := ws.Board(ctx, client.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, columns[0].Items)
	require.Len(t, columns[1].Items, 1)
	assert.Equal(t, 2, api.count("list"))
}

func TestWorkspaceMoveFailureRevertsAndNotifies(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusNew})
	api.statusErr = &client.NotFoundError{Message: "request not found"}
	notifier := &recordingNotifier{}
	ws := newTestWorkspace(api, nil, notifier)
	ctx := context.Background()

	_, err := ws.Board(ctx, client.RequestFilter{})
	require.NoError(t, err)

	out, err := ws.Move(ctx, 1, client.StatusRepaired)
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, out)

	columns, err := ws.Board(ctx, client.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, columns[0].Items, 1)
	assert.Equal(t, client.StatusNew, columns[0].Items[0].Status)

	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, client.KindNotFound, sent[0].Kind)
}

func TestWorkspaceMoveUnknownRequest(t *testing.T) {
	api := newMemoryAPI()
	notifier := &recordingNotifier{}
	ws := newTestWorkspace(api, nil, notifier)

	out, err := ws.Move(context.Background(), 42, client.StatusRepaired)
	assert.Equal(t, OutcomeFailed, out)
	assert.Equal(t, client.KindNotFound, client.Kind(err))
	assert.Len(t, notifier.all(), 1)
	assert.Equal(t, 0, api.count("status"))
}

func TestWorkspaceScrapWithoutConfirmerIsRefused(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusInProgress})
	ws := newTestWorkspace(api, nil, nil)

	out, err := ws.Move(context.Background(), 1, client.StatusScrap)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, out)
	assert.Equal(t, 0, api.count("status"))
}

func TestWorkspaceScrapConfirmed(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusInProgress})
	confirm := &mockConfirmer{}
	confirm.On("ConfirmScrap", mock.Anything, uint64(1)).Return(true, nil).Once()
	ws := newTestWorkspace(api, confirm, nil)

	out, err := ws.Move(context.Background(), 1, client.StatusScrap)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)
	assert.Equal(t, 1, api.count("status"))
	confirm.AssertExpectations(t)
}

func TestWorkspaceDeleteAndComment(t *testing.T) {
	api := newMemoryAPI(client.Request{ID: 1, Status: client.StatusNew}, client.Request{ID: 2, Status: client.StatusNew})
	ws := newTestWorkspace(api, nil, nil)
	ctx := context.Background()

	_, err := ws.Request(ctx, 1)
	require.NoError(t, err)
	_, err = ws.Comment(ctx, 1, "parts ordered")
	require.NoError(t, err)
	assert.False(t, ws.Cache().IsFresh(querycache.RequestDetail(1)))

	_, err = ws.List(ctx, client.RequestFilter{})
	require.NoError(t, err)
	require.NoError(t, ws.Delete(ctx, 2))

	items, err := ws.List(ctx, client.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(1), items[0].ID)
	_, ok := ws.View().Status(2)
	assert.False(t, ok)
}

func TestWorkspaceIsOverdueUsesClock(t *testing.T) {
	ws := newTestWorkspace(newMemoryAPI(), nil, nil)
	assert.True(t, ws.IsOverdue(client.Request{Status: client.StatusNew, ScheduledDate: ptrTime(refNow.Add(-time.Second))}))
	assert.False(t, ws.IsOverdue(client.Request{Status: client.StatusRepaired, ScheduledDate: ptrTime(refNow.Add(-time.Second))}))
}
