// Package lsystem grows the leaf skeleton with a parametric L-system and
// walks it with a turtle.
package lsystem

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/scottkirkwood/cordate"
)

const (
	Generations = 9
	Angle       = 70.0 // degrees
	Axiom       = "{.A(0)}"

	// growth constants
	mainLength   = 5.0  // b: length of the first main axis segment
	mainGrowth   = 1.15 // c
	branchLength = 3.0  // d
	branchGrowth = 1.2  // e
	branchStep   = 1    // f: generations dropped per sub-branch segment
)

// Sentence is an L-system string. Byte offsets into it matter: the turtle
// turns by amounts that depend on where a symbol sits.
type Sentence string

// Stats counts the non-empty rewrites done while expanding.
type Stats struct {
	ARewrites int
	BRewrites int
}

// Expand grows the axiom for Generations generations.
//
// A generation rewrites every A(i) first and then every B(i) of the result,
// so branches spawned by an A are already grown within the same generation.
// Each grown B draws one jitter value from rng, left to right.
// Whatever non-terminals are left at the end are erased.
func Expand(rng *cordate.Rand) (Sentence, Stats) {
	var stats Stats
	s := Axiom
	for g := 0; g < Generations; g++ {
		s = rewrite(s, 'A', func(i int) string {
			if i > Generations {
				return ""
			}
			stats.ARewrites++
			return fmt.Sprintf("F(%s)[-B(%d)][A(%d)][+B(%d)]",
				fixed2(mainLength*math.Pow(mainGrowth, float64(i))), i, i+1, i)
		})
		s = rewrite(s, 'B', func(i int) string {
			if i <= 0 {
				return ""
			}
			scale := 2.5
			if i%2 == 0 {
				scale = 0.1
			}
			jitter := rng.Range(-0.2, 0.2)
			length := branchLength * math.Pow(branchGrowth, float64(i)) * scale * (1 + jitter)
			stats.BRewrites++
			if i == Generations-1 {
				return fmt.Sprintf("F(%s)", fixed2(length*6))
			}
			next := i - branchStep
			if next < 0 {
				next = 0
			}
			return fmt.Sprintf("F(%s)B(%d)", fixed2(length), next)
		})
	}
	erase := func(int) string { return "" }
	s = rewrite(rewrite(s, 'A', erase), 'B', erase)
	return Sentence(s), stats
}

// rewrite replaces every sym(i) in s with rule(i).
func rewrite(s string, sym byte, rule func(i int) string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for j := 0; j < len(s); {
		if s[j] == sym {
			if i, width, ok := parseIndex(s[j+1:]); ok {
				sb.WriteString(rule(i))
				j += 1 + width
				continue
			}
		}
		sb.WriteByte(s[j])
		j++
	}
	return sb.String()
}

// parseIndex reads "(digits)" at the start of s.
func parseIndex(s string) (i, width int, ok bool) {
	if len(s) < 3 || s[0] != '(' {
		return 0, 0, false
	}
	end := 1
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 1 || end >= len(s) || s[end] != ')' {
		return 0, 0, false
	}
	i, err := strconv.Atoi(s[1:end])
	if err != nil {
		return 0, 0, false
	}
	return i, end + 1, true
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
