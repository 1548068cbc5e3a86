package tempo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(intervals ...float64) []TapSample {
	out := make([]TapSample, len(intervals))
	for i, iv := range intervals {
		out[i] = TapSample{Interval: iv}
	}
	return out
}

func TestClusterIntervalsMergesWithinTolerance(t *testing.T) {
	t.Parallel()

	clusters := clusterIntervals(samples(0.5, 0.52, 0.5, 0.48))

	require.Len(t, clusters, 1)
	assert.Equal(t, 0.5, clusters[0].interval)
	assert.Equal(t, 4, clusters[0].count)
	assert.Equal(t, 1.0, clusters[0].weight)
}

func TestClusterRepresentativeIsNeverRecentered(t *testing.T) {
	t.Parallel()

	// 0.54 joins the 0.5 cluster without moving its representative, so
	// 0.58 falls outside tolerance of 0.5 and opens a second cluster even
	// though it is within tolerance of 0.54.
	clusters := clusterIntervals(samples(0.5, 0.54, 0.58))

	require.Len(t, clusters, 2)
	assert.Equal(t, 0.5, clusters[0].interval)
	assert.Equal(t, 2, clusters[0].count)
	assert.Equal(t, 0.58, clusters[1].interval)
	assert.Equal(t, 1, clusters[1].count)
}

func TestClusterWeightsSumToOne(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(11)
		intervals := make([]float64, n)
		for i := range intervals {
			intervals[i] = 0.2 + rng.Float64()*1.8
		}

		clusters := clusterIntervals(samples(intervals...))

		total := 0.0
		for _, c := range clusters {
			total += c.weight
		}
		require.InDelta(t, 1.0, total, 1e-9)
	}
}

func TestDominantTieKeepsFirst(t *testing.T) {
	t.Parallel()

	// Two clusters at exactly half weight each: the earlier one wins.
	clusters := clusterIntervals(samples(0.5, 0.5, 1.0, 1.0))
	require.Len(t, clusters, 2)

	dom := dominant(clusters)
	assert.Equal(t, 0.5, dom.interval)
	assert.Equal(t, 0.5, dom.weight)
}

func TestDominantPicksHeaviest(t *testing.T) {
	t.Parallel()

	clusters := clusterIntervals(samples(1.0, 0.5, 0.5, 0.5))
	dom := dominant(clusters)

	assert.Equal(t, 0.5, dom.interval)
	assert.Equal(t, 0.75, dom.weight)
}
