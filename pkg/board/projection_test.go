package board

import (
	"testing"
	"time"

	"gearguard/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestIsOverdue(t *testing.T) {
	past := refNow.Add(-time.Hour)
	future := refNow.Add(time.Hour)

	tests := []struct {
		name      string
		scheduled *time.Time
		status    client.Status
		want      bool
	}{
		{"no date", nil, client.StatusNew, false},
		{"past new", &past, client.StatusNew, true},
		{"past in progress", &past, client.StatusInProgress, true},
		{"past repaired", &past, client.StatusRepaired, false},
		{"past scrap", &past, client.StatusScrap, false},
		{"future new", &future, client.StatusNew, false},
		{"exactly now", &refNow, client.StatusNew, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.scheduled, tt.status, refNow))
		})
	}
}

func TestProjectionReadsClockEachCall(t *testing.T) {
	now := refNow
	p := NewProjection(func() time.Time { return now })
	scheduled := refNow.Add(time.Minute)

	assert.False(t, p.IsOverdue(&scheduled, client.StatusNew))
	now = now.Add(2 * time.Minute)
	assert.True(t, p.IsOverdue(&scheduled, client.StatusNew))
}

func TestPartition(t *testing.T) {
	p := NewProjection(fixedClock(refNow))
	requests := []client.Request{
		{ID: 1, Status: client.StatusNew},
		{ID: 2, Status: client.StatusInProgress, ScheduledDate: ptrTime(refNow.Add(-time.Hour))},
		{ID: 3, Status: client.StatusNew},
		{ID: 4, Status: client.StatusScrap, ScheduledDate: ptrTime(refNow.Add(-time.Hour))},
		{ID: 5, Status: client.StatusRepaired},
		{ID: 6, Status: client.Status("archived")},
	}

	columns := p.Partition(requests)
	require.Len(t, columns, 4)

	ids := func(c Column) []uint64 {
		out := []uint64{}
		for _, it := range c.Items {
			out = append(out, it.ID)
		}
		return out
	}
	assert.Equal(t, client.StatusNew, columns[0].Status)
	assert.Equal(t, []uint64{1, 3, 6}, ids(columns[0]))
	assert.Equal(t, []uint64{2}, ids(columns[1]))
	assert.Equal(t, []uint64{5}, ids(columns[2]))
	assert.Equal(t, []uint64{4}, ids(columns[3]))

	assert.True(t, columns[1].Items[0].Overdue)
	assert.False(t, columns[3].Items[0].Overdue)

	total := 0
	for _, c := range columns {
		total += len(c.Items)
	}
	assert.Equal(t, len(requests), total)
}

func TestPartitionEmptyKeepsAllColumns(t *testing.T) {
	columns := NewProjection(nil).Partition(nil)
	require.Len(t, columns, 4)
	for i, s := range client.Statuses() {
		assert.Equal(t, s, columns[i].Status)
		assert.NotNil(t, columns[i].Items)
		assert.Empty(t, columns[i].Items)
	}
}

func TestFlatKeepsOrder(t *testing.T) {
	p := NewProjection(fixedClock(refNow))
	items := p.Flat([]client.Request{
		{ID: 9, Status: client.StatusRepaired},
		{ID: 2, Status: client.StatusNew, ScheduledDate: ptrTime(refNow.Add(-time.Minute))},
	})
	require.Len(t, items, 2)
	assert.Equal(t, uint64(9), items[0].ID)
	assert.True(t, items[1].Overdue)
}
