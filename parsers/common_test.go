package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "single pair",
			raw:  `{"text":"Stone Mined"}`,
			want: map[string]string{"text": "Stone Mined"},
		},
		{
			name: "multiple pairs",
			raw:  `{"text":"Health","color":"green"}`,
			want: map[string]string{"text": "Health", "color": "green"},
		},
		{
			name: "spaced pairs",
			raw:  `{"text": "Health", "color": "green"}`,
			want: map[string]string{"text": "Health", "color": "green"},
		},
		{
			name: "empty value",
			raw:  `{"text":""}`,
			want: map[string]string{"text": ""},
		},
		{
			name: "no pairs",
			raw:  `["a","b"]`,
			want: nil,
		},
		{
			name: "non-string values",
			raw:  `{"bold":true}`,
			want: nil,
		},
		{
			name: "plain text",
			raw:  "Stone Mined",
			want: nil,
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDisplayName(tt.raw)
			assert.Equal(t, tt.raw, got.Raw)
			assert.Equal(t, tt.want, got.Parsed)
		})
	}
}
