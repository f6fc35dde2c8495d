// Package matcher maps free-text destination names onto known city names.
package matcher

import "strings"

// Threshold is the minimum similarity a candidate needs to be accepted.
const Threshold = 0.6

// Ratio returns the Ratcliff/Obershelp similarity of a and b in [0, 1]:
// twice the number of matched runes divided by the total rune count.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedRunes(ra, rb)) / float64(total)
}

// Match returns the known city most similar to query. Comparison is
// case-insensitive. On equal scores the earlier entry in known wins.
func Match(query string, known []string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best, bestScore := "", 0.0
	for _, city := range known {
		score := Ratio(q, strings.ToLower(city))
		if score >= Threshold && score > bestScore {
			best, bestScore = city, score
		}
	}
	return best, best != ""
}

// matchedRunes sums the sizes of the matching blocks: the longest common
// substring, then recursively the regions left and right of it.
func matchedRunes(a, b []rune) int {
	type span struct{ alo, ahi, blo, bhi int }

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		total += k
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}
	return total
}

// longestMatch finds the longest common run of a[alo:ahi] and b[blo:bhi].
// Among equally long runs it keeps the one starting earliest in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo

	// prev[j+1] holds the length of the run ending at a[i-1], b[j].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				cur[j+1] = 0
				continue
			}
			k := prev[j] + 1
			cur[j+1] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		prev, cur = cur, prev
	}
	return besti, bestj, bestk
}
