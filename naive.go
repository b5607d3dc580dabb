package sweepline

// CountIntersectingPairs is an O(n²) brute-force reference that counts
// every pair of segments meeting in a single point, checking every
// pair independently of sweep order. Parallel pairs (collinear
// overlapping ones included) and pairs with a degenerate point-segment
// are not counted. It exists purely to cross-
// validate FindIntersections in tests: a correct sweep should report
// records whose segment lists sum, via C(k,2) per record, to the same
// total this function returns.
func CountIntersectingPairs(segs []*Segment) int {
	count := 0
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if _, ok := segmentIntersection(segs[i], segs[j]); ok {
				count++
			}
		}
	}
	return count
}

// RecordPairCount sums C(len(segments), 2) across records, the figure
// CountIntersectingPairs should equal for a correct FindIntersections
// result: k segments meeting at one point account for k*(k-1)/2
// pairwise intersections among them.
func RecordPairCount(records []Record) int {
	total := 0
	for _, r := range records {
		k := len(r.Segments)
		total += k * (k - 1) / 2
	}
	return total
}
