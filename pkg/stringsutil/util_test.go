package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", " ", "b"}, RemoveEmptyStrings([]string{"", "a", " ", "", "b"}))
	assert.Nil(t, RemoveEmptyStrings([]string{""}))
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "http://a:9200", want: []string{"http://a:9200"}},
		{in: " http://a:9200 , ,http://b:9200,", want: []string{"http://a:9200", "http://b:9200"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitAndTrim(tt.in, ","), tt.in)
	}
}
