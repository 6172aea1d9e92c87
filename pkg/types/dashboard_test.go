package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCountsSum(t *testing.T) {
	c := StatusCounts{New: 2, InProgress: 3, Repaired: 1, Scrap: 4}
	assert.Equal(t, int64(10), c.Sum())
}

func TestDashboardStatsJSONKeys(t *testing.T) {
	raw, err := json.Marshal(DashboardStats{})
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{"equipment", "requests", "teams", "recent_activity"} {
		assert.Contains(t, m, k)
	}
}
