package dna

const (
	// WindowWidth is the number of aligned positions scored per cluster window.
	WindowWidth = 5

	// ClusterCount is the most clusters returned by a cluster search.
	ClusterCount = 5
)

// The two cluster searches don't agree on how many windows there are or on
// which windows seed the selection. Both are kept as they are; unifying them
// changes the clusters reported for the same pair of sequences.
var (
	// nucleotideSeeds spread the initial selection one window width apart
	nucleotideSeeds = []int{0, 5, 10, 15, 20}

	// proteinSeeds start from the first five (overlapping) windows
	proteinSeeds = []int{0, 1, 2, 3, 4}
)

// FindNucleotideClusters returns the starts of up to ClusterCount windows
// where a and b share the most nucleotides. Window starts run from 0 to
// n-WindowWidth inclusive, n being the length of the shorter sequence.
func FindNucleotideClusters(a, b *Sequence) []int {
	end := overlap(len(a.raw), len(b.raw))

	var scores []float64
	for i := 0; i+WindowWidth <= end; i++ {
		matches := 0
		for j := 0; j < WindowWidth; j++ {
			if a.raw[i+j] == b.raw[i+j] {
				matches++
			}
		}
		scores = append(scores, float64(matches)/WindowWidth)
	}

	return topClusters(scores, nucleotideSeeds)
}

// FindProteinClusters returns the starts of up to ClusterCount windows where a
// and b share the most protein symbols. Unlike FindNucleotideClusters, window
// starts stop short of n-WindowWidth, so there is one window fewer.
func FindProteinClusters(a, b *Sequence) []int {
	end := overlap(len(a.proteins), len(b.proteins))

	var scores []float64
	for i := 0; i+WindowWidth < end; i++ {
		matches := 0
		for j := 0; j < WindowWidth; j++ {
			if proteinsMatch(a.proteins[i+j], b.proteins[i+j]) {
				matches++
			}
		}
		scores = append(scores, float64(matches)/WindowWidth)
	}

	return topClusters(scores, proteinSeeds)
}

// topClusters greedily picks ClusterCount windows, at least WindowWidth apart,
// with the highest scores. With fewer than ClusterCount windows, all of them
// are returned in order.
//
// The selection starts at seeds. A later window replaces the lowest scoring
// pick if it scores higher and doesn't overlap any current pick. Seeds past
// the last window score below every window and are dropped if never replaced.
func topClusters(scores []float64, seeds []int) []int {
	if len(scores) < ClusterCount {
		clusters := make([]int, len(scores))
		for i := range clusters {
			clusters[i] = i
		}
		return clusters
	}

	score := func(window int) float64 {
		if window >= len(scores) {
			return -1
		}
		return scores[window]
	}

	picks := append([]int(nil), seeds...)
	currMin := minPick(picks, score)
	for i := ClusterCount; i < len(scores); i++ {
		if scores[i] <= score(picks[currMin]) {
			continue
		}

		if !isUnique(i, picks) {
			continue
		}

		picks[currMin] = i
		currMin = minPick(picks, score)
	}

	clusters := picks[:0]
	for _, p := range picks {
		if p < len(scores) {
			clusters = append(clusters, p)
		}
	}
	return clusters
}

// minPick returns the slot of the first pick with the lowest score.
func minPick(picks []int, score func(int) float64) int {
	currMin := 0
	for i := 1; i < len(picks); i++ {
		if score(picks[i]) < score(picks[currMin]) {
			currMin = i
		}
	}
	return currMin
}

// isUnique is whether a window at start is at least WindowWidth from every pick.
func isUnique(start int, picks []int) bool {
	for _, p := range picks {
		if abs(start-p) < WindowWidth {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
