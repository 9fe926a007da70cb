package qdrant

import (
	"context"
	"crypto/tls"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// IQdrant is the subset of Qdrant operations used by the search index.
type IQdrant interface {
	CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error
	CollectionExists(ctx context.Context, name string) (bool, error)
	UpsertPoints(ctx context.Context, colName string, points []Point) error
	DeletePoints(ctx context.Context, colName string, ids []string) error
	Search(ctx context.Context, colName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error)
	Close() error
	Ping(ctx context.Context) error
}

// NewQdrant dials Qdrant over gRPC and pings it.
func NewQdrant(ctx context.Context, cfg QdrantConfig) (IQdrant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if cfg.UseTLS {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}))}
	}
	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
	}

	conn, err := grpc.NewClient(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	client := &qdrantImpl{
		conn:              conn,
		pointsClient:      pb.NewPointsClient(conn),
		collectionsClient: pb.NewCollectionsClient(conn),
		defaultTimeout:    cfg.Timeout,
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping Qdrant: %w", err)
	}

	return client, nil
}

func apiKeyInterceptor(key string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(metadata.AppendToOutgoingContext(ctx, apiKeyHeader, key), method, req, reply, cc, opts...)
	}
}
