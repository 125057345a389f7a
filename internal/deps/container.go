package deps

import (
	"gorm.io/gorm"

	"github.com/joefazee/countries/internal/cache"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/metrics"
	"github.com/joefazee/countries/internal/sanitizer"
	"github.com/joefazee/countries/models"
)

// Container holds all shared dependencies
type Container struct {
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Metrics   *metrics.Metrics
	Snapshots cache.Cache[[]models.Country]

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

// Option sets an optional dependency on the container
type Option func(*Container)

// WithDB sets the postgres handle; nil when another data source is used
func WithDB(db *gorm.DB) Option {
	return func(c *Container) { c.DB = db }
}

// WithSnapshots sets the cache that backs the snapshot store
func WithSnapshots(store cache.Cache[[]models.Country]) Option {
	return func(c *Container) { c.Snapshots = store }
}

func NewContainer(sanitizer sanitizer.HTMLStripperer, log logger.Logger, m *metrics.Metrics, opts ...Option) *Container {
	if log == nil {
		log = logger.NewNullLogger()
	}
	c := &Container{
		Sanitizer:    sanitizer,
		Logger:       log,
		Metrics:      m,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
