package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsPageAndLimit(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults", Params{}, Params{Page: 1, Limit: DefaultLimit}},
		{"negative page", Params{Page: -3, Limit: 20}, Params{Page: 1, Limit: 20}},
		{"zero limit", Params{Page: 2, Limit: 0}, Params{Page: 2, Limit: DefaultLimit}},
		{"limit over cap", Params{Page: 1, Limit: 5000}, Params{Page: 1, Limit: MaxLimit}},
		{"valid untouched", Params{Page: 3, Limit: 25}, Params{Page: 3, Limit: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.want.Page, got.Page)
			assert.Equal(t, tc.want.Limit, got.Limit)
		})
	}
}

func TestOffsetNeverNegative(t *testing.T) {
	p := Params{Page: -10, Limit: 10}.Normalize()
	assert.Equal(t, 0, p.Offset())

	p = Params{Page: 3, Limit: 10}.Normalize()
	assert.Equal(t, 20, p.Offset())
}

func TestTotalPagesIsCeilOfTotalOverLimit(t *testing.T) {
	p := Params{Page: 1, Limit: 10}.Normalize()

	assert.EqualValues(t, 0, p.TotalPages(0))
	assert.EqualValues(t, 1, p.TotalPages(1))
	assert.EqualValues(t, 1, p.TotalPages(10))
	assert.EqualValues(t, 2, p.TotalPages(11))
	assert.EqualValues(t, 100, p.TotalPages(1000))
}

func TestTotalPagesProperty(t *testing.T) {
	// ceil identity sampled over a grid of limits and totals
	for limit := 1; limit <= 50; limit += 7 {
		p := Params{Page: 1, Limit: limit}.Normalize()
		for total := int64(0); total <= 200; total += 13 {
			got := p.TotalPages(total)
			want := (total + int64(limit) - 1) / int64(limit)
			assert.Equal(t, want, got, "limit=%d total=%d", limit, total)
		}
	}
}
