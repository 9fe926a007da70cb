package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  RedisConfig
		want error
	}{
		{name: "ok", cfg: RedisConfig{Host: "localhost", Port: 6379}},
		{name: "no host", cfg: RedisConfig{Port: 6379}, want: ErrHostRequired},
		{name: "zero port", cfg: RedisConfig{Host: "localhost"}, want: ErrInvalidPort},
		{name: "port too large", cfg: RedisConfig{Host: "localhost", Port: 70000}, want: ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateConfig(tt.cfg))
		})
	}
}

func TestNewRedis_InvalidConfig(t *testing.T) {
	r, err := NewRedis(context.Background(), RedisConfig{})
	assert.Nil(t, r)
	assert.Equal(t, ErrHostRequired, err)
}
