package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsig/internal/app/errors"
)

func Test_Filter_Match(t *testing.T) {
	tests := []struct {
		name     string
		includes []string
		ignores  []string
		line     string
		want     bool
	}{
		{name: "no patterns keeps everything", line: "anything", want: true},
		{name: "include match", includes: []string{"error*"}, line: "error: boom", want: true},
		{name: "include miss", includes: []string{"error*"}, line: "info: fine", want: false},
		{name: "ignore wins over include", includes: []string{"*"}, ignores: []string{"*noise*"}, line: "some noise here", want: false},
		{name: "ignore only", ignores: []string{"debug*"}, line: "debug: verbose", want: false},
		{name: "ignore only passes others", ignores: []string{"debug*"}, line: "warn: check", want: true},
		{name: "multiple includes", includes: []string{"warn*", "error*"}, line: "warn: disk", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.includes, tt.ignores)
			require.NoError(t, err)

			assert.Equal(t, tt.want, f.Match(tt.line))
		})
	}
}

func Test_NewFilter_InvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"[unclosed"}, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidGlobPattern)

	_, err = NewFilter(nil, []string{"[unclosed"})
	assert.ErrorIs(t, err, errors.ErrInvalidGlobPattern)
}
