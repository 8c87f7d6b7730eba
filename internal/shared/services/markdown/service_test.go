package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			"basic formatting",
			"**bold** and _italic_",
			[]string{"<strong>bold</strong>", "<em>italic</em>"},
			nil,
		},
		{
			"script tags are stripped",
			"hello <script>alert('x')</script> world",
			[]string{"hello"},
			[]string{"<script>", "alert"},
		},
		{
			"autolinked url",
			"see https://status.deskflow.test for details",
			[]string{`<a href="https://status.deskflow.test"`},
			nil,
		},
		{
			"gfm strikethrough",
			"~~obsolete~~",
			[]string{"<del>obsolete</del>"},
			nil,
		},
		{
			"inline event handlers are stripped",
			`<a href="https://example.com" onclick="steal()">link</a>`,
			[]string{"link"},
			[]string{"onclick", "steal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ToHTMLSanitized(tt.input)
			assert.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, ban := range tt.notContains {
				assert.NotContains(t, out, ban)
			}
		})
	}
}

func TestSanitizeKeepsUGCMarkup(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>fine</p><iframe src="https://evil.test"></iframe>`)
	assert.Contains(t, out, "<p>fine</p>")
	assert.NotContains(t, out, "iframe")
}
