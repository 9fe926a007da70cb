package consumer

import (
	"database/sql"
	"testing"

	"content-srv/config"
	"content-srv/pkg/log"
	"content-srv/pkg/qdrant"
	"content-srv/pkg/redis"
	"content-srv/pkg/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct{ redis.IRedis }

type fakeQdrant struct{ qdrant.IQdrant }

type fakeVoyage struct{ voyage.IVoyage }

func TestNew(t *testing.T) {
	valid := func() Config {
		return Config{
			Logger:       log.NewNop(),
			KafkaConfig:  config.KafkaConfig{Brokers: []string{"localhost:9092"}},
			RedisClient:  fakeRedis{},
			QdrantClient: fakeQdrant{},
			PostgresDB:   new(sql.DB),
			VoyageClient: fakeVoyage{},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no brokers", mutate: func(c *Config) { c.KafkaConfig.Brokers = nil }, wantErr: "kafka brokers are required"},
		{name: "no qdrant", mutate: func(c *Config) { c.QdrantClient = nil }, wantErr: "qdrant client is required"},
		{name: "no voyage", mutate: func(c *Config) { c.VoyageClient = nil }, wantErr: "voyage client is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			srv, err := New(cfg)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}
