package scoring

// ApplyStrokes produces net scores from gross scores and a stroke allocation.
// Both maps are keyed by hole number. A positive allocation entry is a stroke
// received, which lowers the net score for that hole:
//
//	net[h] = gross[h] - allocation[h]
//
// Holes missing from gross are left out of the result: the engine never
// invents a score for a hole the player has not recorded. Because a full
// allocation sums to the course handicap, applying it to a complete 18-hole
// card guarantees total net == total gross - course handicap.
func ApplyStrokes(gross map[int]int, allocation map[int]int) map[int]int {
	net := make(map[int]int, len(gross))
	for hole, strokes := range gross {
		net[hole] = strokes - allocation[hole]
	}
	return net
}

// Total sums a per-hole score map.
func Total(scores map[int]int) int {
	total := 0
	for _, strokes := range scores {
		total += strokes
	}
	return total
}
