package pipeline

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The collator compares text case-insensitively and treats embedded digit
// runs as numbers, so "C10" sorts after "C9". It keeps internal buffers, so
// access is serialized.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Und, collate.Numeric, collate.Loose)
)

// Compare computes a total order over two column values. Empty values are nil
// for sorting purposes: both nil compares equal, a lone nil sorts after any
// non-nil value regardless of direction. Numeric mode coerces each value by
// stripping everything but digits, '.' and '-' before parsing.
func Compare(a, b string, numeric bool) int {
	aNil, bNil := a == "", b == ""
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}

	if numeric {
		na, nb := coerceNumber(a), coerceNumber(b)
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}

	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// coerceNumber mirrors the catalog's loose numeric parsing: strip everything
// except digits, '.' and '-'; an all-noise value becomes 0 and anything still
// unparsable sorts below every real number.
func coerceNumber(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.Inf(-1)
	}
	return f
}
