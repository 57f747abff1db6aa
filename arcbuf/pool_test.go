package arcbuf

import (
	"encoding/json"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"

	"github.com/bytekit/bytekit/bufutils"
)

func TestTierLayout(t *testing.T) {
	require.Equal(t, maxTierSize, minTierSize<<(tierCount-1))

	require.Equal(t, 0, tierIndex(1))
	require.Equal(t, 0, tierIndex(minTierSize))
	require.Equal(t, 1, tierIndex(minTierSize+1))
	require.Equal(t, tierCount-1, tierIndex(maxTierSize))
	require.Equal(t, -1, tierIndex(maxTierSize+1))
}

func TestPoolAllocRoundsUpToTier(t *testing.T) {
	block := poolAlloc(100)
	require.Len(t, block, 100)
	require.Equal(t, minTierSize, cap(block))
	poolFree(block)

	block = poolAlloc(minTierSize + 1)
	require.Len(t, block, minTierSize+1)
	require.Equal(t, minTierSize*2, cap(block))
	poolFree(block)
}

func TestPoolAllocOversize(t *testing.T) {
	size := maxTierSize + 1
	block := poolAlloc(size)
	require.Len(t, block, size)
	require.Equal(t, bufutils.AlignUp(size, oversizePageSize), cap(block))

	// Oversize blocks bypass the tiers; freeing one is a no-op beyond the
	// counter.
	poolFree(block)
}

func TestStatsCountAllocations(t *testing.T) {
	before := Stats()

	buf := New(64)
	buf.Release()

	after := Stats()
	require.GreaterOrEqual(t, after.Allocations, before.Allocations+1)
	require.GreaterOrEqual(t, after.Frees, before.Frees+1)
	require.GreaterOrEqual(t, after.PoolHits, 0)
}

func TestStatsCountReclaims(t *testing.T) {
	before := Stats()

	buf, reclaim := NewReclaimable(64)
	buf.Release()
	fresh, ok := reclaim.TryReclaim()
	require.True(t, ok)
	fresh.Release()
	reclaim.Release()

	after := Stats()
	require.GreaterOrEqual(t, after.Reclaims, before.Reclaims+1)
}

func TestStatisticsPrintJSON(t *testing.T) {
	stats := Statistics{
		Allocations:         10,
		PoolMakes:           4,
		PoolHits:            6,
		Frees:               9,
		OversizeAllocations: 1,
		Reclaims:            3,
	}

	writer := jwriter.NewWriter()
	stats.PrintJSON(&writer)
	require.NoError(t, writer.Error())

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(writer.Bytes(), &decoded))
	require.Equal(t, map[string]int{
		"Allocations":         10,
		"PoolMakes":           4,
		"PoolHits":            6,
		"Frees":               9,
		"OversizeAllocations": 1,
		"Reclaims":            3,
	}, decoded)
}
