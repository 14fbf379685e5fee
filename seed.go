package cordate

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidSeed is returned for seed text that cannot be turned into a number.
var ErrInvalidSeed = errors.New("invalid seed")

// Seed hold the primary seed used for random numbers
type Seed struct {
	text    string
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// NewSeed returns a time based seed, for when the user didn't pick one.
func NewSeed() Seed {
	return SeedFromInt(time.Now().Unix() - epoch2020)
}

// SeedFromInt wraps an integer seed.
func SeedFromInt(v int64) Seed {
	return Seed{text: strconv.FormatInt(v, 10), intSeed: v}
}

// ParseSeed converts the seed text into a Seed.
// Decimal integers are used as is, any other text is hashed so that
// "a" and "oak" are valid seeds too.
func ParseSeed(text string) (Seed, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !utf8.ValidString(trimmed) {
		return Seed{}, fmt.Errorf("%w: %q", ErrInvalidSeed, text)
	}
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Seed{text: trimmed, intSeed: v}, nil
	}
	h := fnv.New64a()
	h.Write([]byte(trimmed))
	return Seed{text: trimmed, intSeed: int64(h.Sum64())}, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// String returns the seed as the user typed it.
func (s Seed) String() string {
	return s.text
}

// GetFilename returns a string to use for this file.
// Separators and other unsafe characters of the seed text are escaped.
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s%s", prefix, url.PathEscape(s.text), ext)
}
