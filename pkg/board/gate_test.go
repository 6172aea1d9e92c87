package board

import (
	"context"
	"errors"
	"testing"

	"gearguard/pkg/client"
	"gearguard/pkg/querycache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gateFixture struct {
	gate     *Gate
	store    *mockUpdater
	confirm  *mockConfirmer
	notifier *recordingNotifier
	view     *View
	cache    *querycache.Cache
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	f := &gateFixture{
		store:    &mockUpdater{},
		confirm:  &mockConfirmer{},
		notifier: &recordingNotifier{},
		view:     NewView(),
		cache:    querycache.New(),
	}
	f.view.Load([]client.Request{{ID: 7, Status: client.StatusInProgress}})
	f.gate = NewGate(f.store, f.confirm, f.notifier, f.view, f.cache, nil)
	t.Cleanup(func() {
		f.store.AssertExpectations(t)
		f.confirm.AssertExpectations(t)
	})
	return f
}

func TestGateScrapCancelledIssuesNoCall(t *testing.T) {
	f := newGateFixture(t)
	f.confirm.On("ConfirmScrap", mock.Anything, uint64(7)).Return(false, nil).Once()

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusScrap)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, out)

	f.store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	s, _ := f.view.Status(7)
	assert.Equal(t, client.StatusInProgress, s)
	assert.Empty(t, f.notifier.all())
}

func TestGateScrapConfirmerErrorCancels(t *testing.T) {
	f := newGateFixture(t)
	f.confirm.On("ConfirmScrap", mock.Anything, uint64(7)).Return(false, errors.New("stdin closed")).Once()

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusScrap)
	assert.Error(t, err)
	assert.Equal(t, OutcomeCancelled, out)
	f.store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGateScrapConfirmed(t *testing.T) {
	f := newGateFixture(t)
	f.confirm.On("ConfirmScrap", mock.Anything, uint64(7)).Return(true, nil).Once()
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusScrap).
		Return(&client.StatusChange{ID: 7, OldStatus: client.StatusInProgress, NewStatus: client.StatusScrap}, nil).Once()

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusScrap)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	s, _ := f.view.Status(7)
	assert.Equal(t, client.StatusScrap, s)
	assert.False(t, f.view.Pending(7))
}

func TestGateNonScrapSkipsConfirmation(t *testing.T) {
	f := newGateFixture(t)
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusRepaired).
		Return(&client.StatusChange{ID: 7}, nil).Once()

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusRepaired)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)
	f.confirm.AssertNotCalled(t, "ConfirmScrap", mock.Anything, mock.Anything)
}

func TestGateFailureRevertsAndNotifies(t *testing.T) {
	f := newGateFixture(t)
	notFound := &client.NotFoundError{Message: "request not found"}
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusRepaired).Return(nil, notFound).Once()

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusRepaired)
	assert.ErrorIs(t, err, notFound)
	assert.Equal(t, OutcomeFailed, out)

	s, _ := f.view.Status(7)
	assert.Equal(t, client.StatusInProgress, s)
	assert.False(t, f.view.Pending(7))

	sent := f.notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, uint64(7), sent[0].RequestID)
	assert.Equal(t, client.KindNotFound, sent[0].Kind)
}

func TestGateSameStatusIsNoop(t *testing.T) {
	f := newGateFixture(t)

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, out)
	f.store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGateRejectsUnknownStatus(t *testing.T) {
	f := newGateFixture(t)

	out, err := f.gate.Transition(context.Background(), 7, client.StatusInProgress, client.Status("lost"))
	assert.Equal(t, OutcomeFailed, out)
	assert.Equal(t, client.KindValidation, client.Kind(err))
	require.Len(t, f.notifier.all(), 1)
	f.store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGateSuccessInvalidatesCache(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusRepaired).Return(&client.StatusChange{ID: 7}, nil).Once()

	_, err := querycache.Fetch(ctx, f.cache, querycache.DashboardStats(), func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	_, err = querycache.Fetch(ctx, f.cache, querycache.RequestList(nil), func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	require.True(t, f.cache.IsFresh(querycache.DashboardStats()))

	_, err = f.gate.Transition(ctx, 7, client.StatusInProgress, client.StatusRepaired)
	require.NoError(t, err)

	assert.False(t, f.cache.IsFresh(querycache.DashboardStats()))
	assert.False(t, f.cache.IsFresh(querycache.RequestList(nil)))
}

func TestGateOverlappingMovesRevertToFailedMoveStart(t *testing.T) {
	f := newGateFixture(t)
	f.view.Load([]client.Request{{ID: 7, Status: client.StatusNew}})
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusInProgress).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&client.StatusChange{ID: 7, OldStatus: client.StatusNew, NewStatus: client.StatusInProgress}, nil).Once()
	f.store.On("UpdateStatus", mock.Anything, uint64(7), client.StatusRepaired).
		Return(nil, &client.NotFoundError{Message: "request not found"}).Once()

	done := make(chan Outcome, 1)
	go func() {
		out, _ := f.gate.Transition(ctx, 7, client.StatusNew, client.StatusInProgress)
		done <- out
	}()
	<-started

	out, err := f.gate.Transition(ctx, 7, client.StatusInProgress, client.StatusRepaired)
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, out)

	s, _ := f.view.Status(7)
	assert.Equal(t, client.StatusInProgress, s)
	assert.True(t, f.view.Pending(7))

	close(release)
	assert.Equal(t, OutcomeApplied, <-done)
	s, _ = f.view.Status(7)
	assert.Equal(t, client.StatusInProgress, s)
	assert.False(t, f.view.Pending(7))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
