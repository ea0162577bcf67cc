package directory

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, State{Search: "ann"}, Canonicalize(State{Search: "ann", Page: 1}))
	assert.Equal(t, State{}, Canonicalize(State{Page: -3}))
	assert.Equal(t, State{Page: 4}, Canonicalize(State{Page: 4}))
}

func TestState_Encode(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{name: "empty", state: State{}, want: ""},
		{name: "first page omitted", state: State{Page: 1}, want: ""},
		{name: "page only", state: State{Page: 3}, want: "page=3"},
		{name: "search first", state: State{Search: "ann", Page: 3}, want: "search=ann&page=3"},
		{name: "escaped search", state: State{Search: "a b&c"}, want: "search=a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Encode())
		})
	}
}

func TestState_Href(t *testing.T) {
	assert.Equal(t, "/", State{}.Href(""))
	assert.Equal(t, "/?page=2", State{Page: 2}.Href("/"))
	assert.Equal(t, "/users?search=ann", State{Search: "ann"}.Href("/users"))
}

func TestState_Values(t *testing.T) {
	v := State{Search: "ann", Page: 1}.Values()
	assert.Equal(t, "ann", v.Get(SearchParam))
	assert.False(t, v.Has(PageParam))
}

func TestPreviousLink(t *testing.T) {
	t.Run("disabled on first page", func(t *testing.T) {
		for _, page := range []int{-1, 0, 1} {
			l := PreviousLink(page, State{Search: "ann"})
			assert.False(t, l.Enabled)
			assert.Equal(t, "", l.Href("/"))
		}
	})

	t.Run("page two drops page key", func(t *testing.T) {
		l := PreviousLink(2, State{Search: "ann", Page: 2})
		assert.True(t, l.Enabled)
		assert.Equal(t, State{Search: "ann"}, l.State)
		assert.False(t, l.State.Values().Has(PageParam))
		assert.Equal(t, "/?search=ann", l.Href("/"))
	})

	t.Run("later pages encode page minus one", func(t *testing.T) {
		for page := 3; page < 10; page++ {
			l := PreviousLink(page, State{})
			assert.True(t, l.Enabled)
			assert.Equal(t, itoa(page-1), l.State.Values().Get(PageParam))
		}
	})
}

func TestNextLink(t *testing.T) {
	t.Run("disabled on last page", func(t *testing.T) {
		assert.False(t, NextLink(3, 3, State{}).Enabled)
		assert.False(t, NextLink(4, 3, State{}).Enabled)
		assert.False(t, NextLink(1, 0, State{}).Enabled)
		assert.False(t, NextLink(1, 1, State{}).Enabled)
	})

	t.Run("always encodes page plus one", func(t *testing.T) {
		for page := 1; page < 5; page++ {
			l := NextLink(page, 5, State{})
			assert.True(t, l.Enabled)
			assert.Equal(t, itoa(page+1), l.State.Values().Get(PageParam))
		}
	})
}

func TestLinks_PreserveSearch(t *testing.T) {
	for _, search := range []string{"", "ann", "a b", "%_"} {
		current := State{Search: search, Page: 3}

		prev := PreviousLink(3, current)
		next := NextLink(3, 5, current)

		assert.Equal(t, search, prev.State.Search)
		assert.Equal(t, search, next.State.Search)
		assert.Equal(t, State{Search: search, Page: 3}, current)
	}
}
