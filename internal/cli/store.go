package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/slidekit/slidekit/pkg/anchor"
)

// storeOpts selects the anchor store backend.
//
// The file store is the default for single-user CLI work. Redis and Mongo
// point at shared deployments so collaborators see each other's pins;
// picking both is rejected.
type storeOpts struct {
	dir       string // file store directory
	redisAddr string // redis address, e.g. "localhost:6379"
	mongoURI  string // mongo connection string
}

// register adds the backend selection flags to cmd.
func (o *storeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dir, "anchor-dir", "", "directory for the file anchor store (default: user cache dir)")
	cmd.Flags().StringVar(&o.redisAddr, "redis", "", "use a Redis anchor store at this address")
	cmd.Flags().StringVar(&o.mongoURI, "mongo", "", "use a MongoDB anchor store at this connection string")
}

// open builds the selected anchor store. The returned close function
// releases any client connection and is safe to call once.
func (o *storeOpts) open(ctx context.Context) (anchor.Store, func(), error) {
	noop := func() {}

	if o.redisAddr != "" && o.mongoURI != "" {
		return nil, noop, errFlagConflict
	}

	if o.redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: o.redisAddr})
		return anchor.NewRedisStore(client, ""), func() { _ = client.Close() }, nil
	}

	if o.mongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(o.mongoURI))
		if err != nil {
			return nil, noop, err
		}
		coll := client.Database("slidekit").Collection("anchors")
		return anchor.NewMongoStore(coll), func() { _ = client.Disconnect(context.Background()) }, nil
	}

	dir := o.dir
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return nil, noop, err
		}
		dir = filepath.Join(cache, "slidekit", "anchors")
	}
	store, err := anchor.NewFileStore(dir)
	if err != nil {
		return nil, noop, err
	}
	return store, noop, nil
}

var errFlagConflict = &flagConflictError{}

type flagConflictError struct{}

func (*flagConflictError) Error() string {
	return "--redis and --mongo are mutually exclusive"
}

// docIDFor derives the anchor-store document id for a deck file: the deck's
// own doc_id when set, otherwise the absolute file path.
func docIDFor(declared, path string) string {
	if declared != "" {
		return declared
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
