package tenantdb

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoFactory returns an OpenFunc that opens one MongoDB client for a
// tenant using the config's URI template and pool settings. Transient connect
// failures are retried at a fixed interval until the attempts run out or the
// context (carrying the registry's connect timeout) expires.
func NewMongoFactory(cfg Config) OpenFunc[*mongo.Client] {
	return func(ctx context.Context, tenantID string) (*mongo.Client, error) {
		attempt := func() (*mongo.Client, error) {
			client, err := mongo.Connect(
				options.Client().
					ApplyURI(cfg.URIFor(tenantID)).
					SetConnectTimeout(cfg.ConnectTimeout).
					SetMaxPoolSize(cfg.MaxPoolSize).
					SetMinPoolSize(cfg.MinPoolSize),
			)
			if err != nil {
				return nil, err
			}
			if err := client.Ping(ctx, nil); err != nil {
				_ = client.Disconnect(context.WithoutCancel(ctx))
				return nil, err
			}
			return client, nil
		}

		client, err := backoff.Retry(ctx, attempt,
			backoff.WithBackOff(backoff.NewConstantBackOff(cfg.ConnectRetryInterval)),
			backoff.WithMaxTries(cfg.ConnectAttempts),
		)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, errors.Join(ErrConnectTimeout, err)
			}
			return nil, errors.Join(ErrConnectionUnavailable, err)
		}
		return client, nil
	}
}

// CloseMongo is the CloseFunc counterpart of NewMongoFactory.
func CloseMongo(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

// Healthcheck returns a health check function suitable for readiness probes.
// It performs a lightweight Ping against the given tenant's connection.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
