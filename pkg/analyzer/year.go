package analyzer

import (
	"regexp"
	"sort"
	"strconv"
)

// DefaultDecisionYear anchors roadmap timelines when the source
// documents carry no usable year.
const DefaultDecisionYear = 2025

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// InferDecisionYear picks the year the roadmap should anchor on: the
// most frequently mentioned plausible year in the source material,
// preferring the later year on a tie.
func InferDecisionYear(content string) int {
	counts := map[int]int{}
	for _, m := range yearRe.FindAllString(content, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || y < 1900 || y > DefaultDecisionYear {
			continue
		}
		counts[y]++
	}
	if len(counts) == 0 {
		return DefaultDecisionYear
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool {
		if counts[years[i]] != counts[years[j]] {
			return counts[years[i]] > counts[years[j]]
		}
		return years[i] > years[j]
	})
	return years[0]
}
