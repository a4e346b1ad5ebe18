package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Config struct {
	URL      string        `yaml:"url"`
	Database string        `yaml:"database"`
	Timeout  time.Duration `yaml:"timeout"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return &Client{
		c:   client,
		db:  client.Database(cfg.Database),
		log: log.With("mongo_client"),
	}, nil
}

type Client struct {
	c   *mongo.Client
	db  *mongo.Database
	log logger.Logger
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Txn runs do inside a single mongo transaction. The callback must use
// the context it is given for every operation that belongs to the txn.
func (c *Client) Txn(ctx context.Context, do func(ctx context.Context) error) error {
	session, err := c.c.StartSession()
	if err != nil {
		return errors.WrapFail(err, "start session")
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(
		ctx,
		func(sessCtx mongo.SessionContext) (any, error) {
			return nil, do(sessCtx)
		},
		txnOpts,
	)
	return err
}

func (c *Client) Close(ctx context.Context) error {
	err := c.c.Disconnect(ctx)
	if err != nil {
		return errors.WrapFail(err, "close mongo db connection")
	}

	c.log.Infof("mongo connection closed")
	return nil
}
