package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNilPolicy(t *testing.T) {
	cases := []struct {
		name    string
		a, b    string
		numeric bool
		want    int
	}{
		{name: "both empty text", a: "", b: "", numeric: false, want: 0},
		{name: "both empty numeric", a: "", b: "", numeric: true, want: 0},
		{name: "a empty sorts after", a: "", b: "WD1100", numeric: false, want: 1},
		{name: "b empty sorts after", a: "WD1100", b: "", numeric: false, want: -1},
		{name: "a empty numeric", a: "", b: "3", numeric: true, want: 1},
		{name: "b empty numeric", a: "3", b: "", numeric: true, want: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b, tc.numeric))
		})
	}
}

func TestCompareNumeric(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{name: "plain integers", a: "3", b: "4", want: -1},
		{name: "equal", a: "60", b: "60", want: 0},
		{name: "decimal", a: "2.5", b: "2.25", want: 1},
		{name: "negative", a: "-1", b: "1", want: -1},
		{name: "formatted value", a: "1,200 hrs", b: "900", want: 1},
		{name: "currency noise stripped", a: "$45", b: "50", want: -1},
		{name: "unparsable sorts lowest", a: "1.2.3", b: "-9999", want: -1},
		{name: "all-noise coerces to zero", a: "abc", b: "1", want: -1},
		{name: "all-noise above negatives", a: "abc", b: "-1", want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b, true))
		})
	}
}

func TestCompareText(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{name: "alphabetical", a: "Algebra", b: "Biology", want: -1},
		{name: "case insensitive equal", a: "wd1100", b: "WD1100", want: 0},
		{name: "digit runs numeric", a: "C9", b: "C10", want: -1},
		{name: "digit runs numeric reversed", a: "C10", b: "C9", want: 1},
		{name: "identical", a: "Fall", b: "Fall", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b, false))
		})
	}
}
