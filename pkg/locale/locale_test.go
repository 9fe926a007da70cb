package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en", want: EN},
		{in: " VI ", want: VI},
		{in: "vi-VN", want: VI},
		{in: "en-US,en;q=0.9", want: EN},
		{in: "fr", want: DefaultLang},
		{in: "", want: DefaultLang},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.in))
		})
	}
}

func TestContext(t *testing.T) {
	assert.Equal(t, DefaultLang, GetLang(context.Background()))

	ctx := SetLocaleToContext(context.Background(), "vi")
	assert.Equal(t, VI, GetLang(ctx))
}
