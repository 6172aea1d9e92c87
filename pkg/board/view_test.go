package board

import (
	"testing"

	"gearguard/pkg/client"

	"github.com/stretchr/testify/assert"
)

func TestViewProposeCommit(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	tok := v.Propose(1, client.StatusInProgress)
	s, _ := v.Status(1)
	assert.Equal(t, client.StatusInProgress, s)
	assert.True(t, v.Pending(1))

	v.Commit(tok, client.StatusInProgress)
	s, _ = v.Status(1)
	assert.Equal(t, client.StatusInProgress, s)
	assert.False(t, v.Pending(1))
}

func TestViewRollbackRestoresConfirmed(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	tok := v.Propose(1, client.StatusRepaired)
	v.Rollback(tok)

	s, ok := v.Status(1)
	assert.True(t, ok)
	assert.Equal(t, client.StatusNew, s)
}

func TestViewStaleRollbackKeepsNewerProposal(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	first := v.Propose(1, client.StatusInProgress)
	second := v.Propose(1, client.StatusRepaired)

	v.Rollback(first)
	s, _ := v.Status(1)
	assert.Equal(t, client.StatusRepaired, s)
	assert.True(t, v.Pending(1))

	v.Commit(second, client.StatusRepaired)
	assert.False(t, v.Pending(1))
}

func TestViewApplyAndForget(t *testing.T) {
	v := NewView()
	fetched := []client.Request{{ID: 1, Status: client.StatusNew}, {ID: 2, Status: client.StatusNew}}
	v.Load(fetched)
	v.Propose(2, client.StatusInProgress)

	shown := v.Apply(fetched)
	assert.Equal(t, client.StatusNew, shown[0].Status)
	assert.Equal(t, client.StatusInProgress, shown[1].Status)
	assert.Equal(t, client.StatusNew, fetched[1].Status)

	v.Forget(2)
	_, ok := v.Status(2)
	assert.False(t, ok)
}

func TestViewFailedMoveShowsItsStartingStatus(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	first := v.Propose(1, client.StatusInProgress)
	second := v.Propose(1, client.StatusRepaired)
	v.Rollback(second)

	s, _ := v.Status(1)
	assert.Equal(t, client.StatusInProgress, s)
	assert.True(t, v.Pending(1))

	v.Commit(first, client.StatusInProgress)
	s, _ = v.Status(1)
	assert.Equal(t, client.StatusInProgress, s)
	assert.False(t, v.Pending(1))
}

func TestViewLateCommitDoesNotOverrideNewer(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	older := v.Propose(1, client.StatusInProgress)
	newer := v.Propose(1, client.StatusRepaired)

	v.Commit(newer, client.StatusRepaired)
	s, _ := v.Status(1)
	assert.Equal(t, client.StatusRepaired, s)

	v.Commit(older, client.StatusInProgress)
	s, _ = v.Status(1)
	assert.Equal(t, client.StatusRepaired, s)
	assert.False(t, v.Pending(1))
}

func TestViewOlderRollbackAfterNewerCommit(t *testing.T) {
	v := NewView()
	v.Load([]client.Request{{ID: 1, Status: client.StatusNew}})

	older := v.Propose(1, client.StatusInProgress)
	newer := v.Propose(1, client.StatusRepaired)
	v.Commit(newer, client.StatusRepaired)

	s, _ := v.Status(1)
	assert.Equal(t, client.StatusRepaired, s)

	v.Rollback(older)
	s, _ = v.Status(1)
	assert.Equal(t, client.StatusRepaired, s)
}
