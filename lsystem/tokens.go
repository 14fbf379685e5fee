package lsystem

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnbalanced means a sentence has a ] without [ or a [ that is never closed.
var ErrUnbalanced = errors.New("unbalanced brackets")

// Kind of turtle command.
type Kind int

const (
	Forward Kind = iota // F(len)
	Right               // +
	Left                // -
	Push                // [
	Pop                 // ]
)

// Token is one turtle command and the byte offset it starts at.
type Token struct {
	Kind   Kind
	Index  int
	Length float64 // Forward only
}

// Tokens lists the turtle commands of s. Characters that are not commands
// (braces, dots, left over symbols) are skipped.
func (s Sentence) Tokens() []Token {
	toks := make([]Token, 0, len(s)/4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'F':
			if length, width, ok := parseForward(string(s[i+1:])); ok {
				toks = append(toks, Token{Kind: Forward, Index: i, Length: length})
				i += width
			}
		case '+':
			toks = append(toks, Token{Kind: Right, Index: i})
		case '-':
			toks = append(toks, Token{Kind: Left, Index: i})
		case '[':
			toks = append(toks, Token{Kind: Push, Index: i})
		case ']':
			toks = append(toks, Token{Kind: Pop, Index: i})
		}
	}
	return toks
}

// parseForward reads "(digits[.digits])" at the start of s.
func parseForward(s string) (length float64, width int, ok bool) {
	if len(s) < 3 || s[0] != '(' {
		return 0, 0, false
	}
	end := 1
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 1 {
		return 0, 0, false
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
	}
	if end >= len(s) || s[end] != ')' {
		return 0, 0, false
	}
	length, err := strconv.ParseFloat(s[1:end], 64)
	if err != nil {
		return 0, 0, false
	}
	return length, end + 1, true
}

// BranchTips returns the offsets of the last F inside every matched
// bracket pair. Those are the moves that sample the leaf boundary.
func BranchTips(s Sentence) (map[int]bool, error) {
	var forwards []int
	for _, t := range s.Tokens() {
		if t.Kind == Forward {
			forwards = append(forwards, t.Index)
		}
	}

	tips := make(map[int]bool)
	var stack []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ] at %d", ErrUnbalanced, i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// first forward at or after the ], minus one, is the last one inside
			k := sort.SearchInts(forwards, i) - 1
			if k >= 0 && forwards[k] > open {
				tips[forwards[k]] = true
			}
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: [ at %d never closed", ErrUnbalanced, stack[len(stack)-1])
	}
	return tips, nil
}
