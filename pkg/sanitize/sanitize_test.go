package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	s := New()

	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:        "script removed",
			in:          `<p>hi</p><script>alert(1)</script>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"<script", "alert(1)"},
		},
		{
			name:        "event handler removed",
			in:          `<img src="https://example.com/a.png" onerror="x()" alt="a">`,
			contains:    []string{`alt="a"`},
			notContains: []string{"onerror"},
		},
		{
			name:     "code class kept",
			in:       `<pre><code class="language-go">fmt.Println()</code></pre>`,
			contains: []string{`class="language-go"`},
		},
		{
			name:        "javascript link removed",
			in:          `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.in)
			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, out, c)
			}
		})
	}
}
