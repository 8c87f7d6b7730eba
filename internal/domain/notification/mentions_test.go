package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no mentions", "please take a look", nil},
		{"single mention", "ping @alice about this", []string{"alice"}},
		{"multiple mentions in order", "@bob and @alice, see above", []string{"bob", "alice"}},
		{"duplicates preserved", "@alice @alice", []string{"alice", "alice"}},
		{"underscore and digits", "cc @dev_team2", []string{"dev_team2"}},
		{"mention at start", "@carol fixed it", []string{"carol"}},
		{"bare at sign", "meet @ noon", nil},
		{"email address matches local part", "mail alice@example.com", []string{"example"}},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.text))
		})
	}
}
