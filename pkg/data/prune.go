package data

import (
	"sort"
	"time"
)

// PruneStats reports what the last Prune removed.
type PruneStats struct {
	PointsRemoved int
	SeriesPruned  int
}

// Prune drops points older than each series' retention, measured back from
// now. Series without a retention are left alone.
func (s *Store) Prune(now time.Time) PruneStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats PruneStats
	for _, ser := range s.series {
		retention := ser.retention
		if retention <= 0 {
			retention = s.cfg.Retention
		}
		if retention <= 0 {
			continue
		}
		cutoff := now.Add(-retention)
		idx := sort.Search(len(ser.times), func(i int) bool { return ser.times[i].After(cutoff) })
		if idx == 0 {
			continue
		}
		stats.PointsRemoved += idx
		stats.SeriesPruned++

		// Compact when most of the backing array is dead.
		if idx > len(ser.times)/2 {
			ser.times = append([]time.Time(nil), ser.times[idx:]...)
			ser.values = append([]float64(nil), ser.values[idx:]...)
		} else {
			ser.times = ser.times[idx:]
			ser.values = ser.values[idx:]
		}
	}
	if stats.PointsRemoved > 0 {
		s.version++
	}
	return stats
}
