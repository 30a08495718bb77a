package usecase

// jaccard returns |a ∩ b| / |a ∪ b| for two product-id sets. Two empty sets
// have similarity 0 by convention.
func jaccard(a, b map[int]struct{}) float64 {
	intersection := 0
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
