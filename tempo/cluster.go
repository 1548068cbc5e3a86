package tempo

import "math"

// Intervals within this distance of a cluster's representative are
// considered the same tempo.
const clusterTolerance = 0.05 // seconds

// cluster groups similar inter-tap intervals. The representative is the
// first interval that opened the cluster and is never recentered as
// members join, so grouping is order-dependent on first occurrence.
type cluster struct {
	interval float64 // representative interval in seconds
	count    int
	weight   float64 // normalized share of the window
}

// clusterIntervals bins the window's intervals against fixed
// representatives and normalizes the counts so the weights sum to 1.
func clusterIntervals(history []TapSample) []cluster {
	clusters := make([]cluster, 0, len(history))

	for _, sample := range history {
		matched := false
		for i := range clusters {
			if math.Abs(clusters[i].interval-sample.Interval) <= clusterTolerance {
				clusters[i].count++
				matched = true
				break
			}
		}
		if !matched {
			clusters = append(clusters, cluster{interval: sample.Interval, count: 1})
		}
	}

	total := 0
	for _, c := range clusters {
		total += c.count
	}
	for i := range clusters {
		clusters[i].weight = float64(clusters[i].count) / float64(total)
	}

	return clusters
}

// dominant returns the heaviest cluster. Exact ties keep the earliest
// cluster, so selection is deterministic in window order.
func dominant(clusters []cluster) cluster {
	best := clusters[0]
	for _, c := range clusters[1:] {
		if c.weight > best.weight {
			best = c
		}
	}
	return best
}
