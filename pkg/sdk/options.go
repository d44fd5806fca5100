package catalog

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	keyPrefix      string
	recentQueries  int
	searchLogDepth int
	perRank        int
	maxFeatured    int
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisCluster configures the client to connect to a Redis cluster.
func WithRedisCluster(addrs []string, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.password = password
	})
}

// WithUsername sets the database ACL username.
func WithUsername(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithKeyPrefix overrides the key namespace (default "catalog:").
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithSearchLog tunes the query log: how many recent queries a search
// echoes back and how many entries the log retains.
func WithSearchLog(recentQueries, depth int) Option {
	return optionFunc(func(c *clientConfig) {
		c.recentQueries = recentQueries
		c.searchLogDepth = depth
	})
}

// WithFeaturedLimits tunes the featured ranking sizes.
func WithFeaturedLimits(perRank, maxTotal int) Option {
	return optionFunc(func(c *clientConfig) {
		c.perRank = perRank
		c.maxFeatured = maxTotal
	})
}
