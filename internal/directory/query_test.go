package directory

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(6))
	assert.Equal(t, 2, TotalPages(7))
	assert.Equal(t, 3, TotalPages(13))
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		totalPages int
		want       int
	}{
		{name: "absent", raw: "", totalPages: 3, want: 1},
		{name: "non numeric", raw: "abc", totalPages: 3, want: 1},
		{name: "zero", raw: "0", totalPages: 3, want: 1},
		{name: "negative", raw: "-2", totalPages: 3, want: 1},
		{name: "one", raw: "1", totalPages: 3, want: 1},
		{name: "second page", raw: "2", totalPages: 3, want: 2},
		{name: "last page", raw: "3", totalPages: 3, want: 3},
		{name: "past last page clamps to first", raw: "4", totalPages: 3, want: 1},
		{name: "far past last page", raw: "99", totalPages: 3, want: 1},
		{name: "no pages", raw: "2", totalPages: 0, want: 1},
		{name: "surrounding space", raw: " 2 ", totalPages: 3, want: 2},
		{name: "integral float", raw: "2.0", totalPages: 3, want: 2},
		{name: "fraction", raw: "2.5", totalPages: 3, want: 1},
		{name: "infinity", raw: "Inf", totalPages: 3, want: 1},
		{name: "nan", raw: "NaN", totalPages: 3, want: 1},
		{name: "huge", raw: "1e300", totalPages: 3, want: 1},
		{name: "exponent", raw: "2e0", totalPages: 3, want: 2},
		{name: "hex literal", raw: "0x2", totalPages: 3, want: 2},
		{name: "upper hex literal", raw: "0X3", totalPages: 3, want: 3},
		{name: "octal literal", raw: "0o2", totalPages: 3, want: 2},
		{name: "binary literal", raw: "0b10", totalPages: 3, want: 2},
		{name: "hex literal past last page", raw: "0xff", totalPages: 3, want: 1},
		{name: "signed hex literal", raw: "-0x2", totalPages: 3, want: 1},
		{name: "bad binary digit", raw: "0b12", totalPages: 3, want: 1},
		{name: "hex float", raw: "0x1p1", totalPages: 3, want: 1},
		{name: "underscore in literal", raw: "0x_2", totalPages: 3, want: 1},
		{name: "leading zero decimal", raw: "02", totalPages: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePage(tt.raw, tt.totalPages))
		})
	}
}

func TestResolvePage_EchoesValidPages(t *testing.T) {
	const totalPages = 20
	for p := 2; p <= totalPages; p++ {
		raw := url.Values{PageParam: {itoa(p)}}
		assert.Equal(t, p, ResolvePage(PageFromValues(raw), totalPages))
	}
}

func TestBuildQuery(t *testing.T) {
	q := BuildQuery("ann", "2", 3)

	assert.Equal(t, "ann", q.Filter.NameContains)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, PageSize, q.Limit)
	assert.Equal(t, 6, q.Offset)
}

func TestBuildQuery_OutOfRangeStartsAtFirstPage(t *testing.T) {
	q := BuildQuery("", "99", 3)

	assert.True(t, q.Filter.IsEmpty())
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.Offset)
}

func TestBuildQuery_KeepsSearchVerbatim(t *testing.T) {
	q := BuildQuery("  An%n_ ", "", 1)
	assert.Equal(t, "  An%n_ ", q.Filter.NameContains)
}

func TestSearchFromValues(t *testing.T) {
	assert.Equal(t, "", SearchFromValues(url.Values{}))
	assert.Equal(t, "ann", SearchFromValues(url.Values{SearchParam: {"ann"}}))
	assert.Equal(t, "", SearchFromValues(url.Values{SearchParam: {"ann", "bob"}}))
	assert.Equal(t, "", PageFromValues(url.Values{PageParam: {"2", "3"}}))
}
