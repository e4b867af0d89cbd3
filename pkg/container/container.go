package container

import (
	"context"
	"fmt"
	"time"

	"megaferia-backend/internal/config"
	"megaferia-backend/internal/infrastructure/events"
	"megaferia-backend/internal/shared/observer"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/pkg/logger"

	bookHandler "megaferia-backend/internal/domains/book/handler"
	bookModel "megaferia-backend/internal/domains/book/model"
	bookService "megaferia-backend/internal/domains/book/service"
	personHandler "megaferia-backend/internal/domains/person/handler"
	personModel "megaferia-backend/internal/domains/person/model"
	personService "megaferia-backend/internal/domains/person/service"
	publisherHandler "megaferia-backend/internal/domains/publisher/handler"
	publisherModel "megaferia-backend/internal/domains/publisher/model"
	publisherService "megaferia-backend/internal/domains/publisher/service"
	standHandler "megaferia-backend/internal/domains/stand/handler"
	standModel "megaferia-backend/internal/domains/stand/model"
	standService "megaferia-backend/internal/domains/stand/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Thứ tự: Config → Repositories → Services → Handlers → Observers
type Container struct {
	Config *config.Config
	Redis  *events.RedisClient // nil unless REDIS_ENABLED

	// REPOSITORY LAYER (in-memory, one per entity type)
	AuthorRepo    *repository.Memory[personModel.Author, int64]
	ManagerRepo   *repository.Memory[personModel.Manager, int64]
	NarratorRepo  *repository.Memory[personModel.Narrator, int64]
	PublisherRepo *repository.Memory[publisherModel.Publisher, string]
	StandRepo     *repository.Memory[standModel.Stand, int64]
	BookRepo      *repository.Memory[bookModel.Book, string]

	// SERVICE LAYER
	PersonService    *personService.PersonService
	PublisherService *publisherService.PublisherService
	StandService     *standService.StandService
	BookService      *bookService.BookService

	// HANDLER LAYER
	PersonHandler    *personHandler.PersonHandler
	PublisherHandler *publisherHandler.PublisherHandler
	StandHandler     *standHandler.StandHandler
	BookHandler      *bookHandler.BookHandler
}

// NewContainer builds the dependency graph from an already loaded config.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if cfg.Redis.Enabled {
		if err := c.initChangeFeed(); err != nil {
			return nil, err
		}
	}

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"change_feed": cfg.Redis.Enabled,
	})
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = repository.NewMemory[personModel.Author, int64]()
	c.ManagerRepo = repository.NewMemory[personModel.Manager, int64]()
	c.NarratorRepo = repository.NewMemory[personModel.Narrator, int64]()
	c.PublisherRepo = repository.NewMemory[publisherModel.Publisher, string]()
	c.StandRepo = repository.NewMemory[standModel.Stand, int64]()
	c.BookRepo = repository.NewMemory[bookModel.Book, string]()
}

func (c *Container) initServices() {
	c.PersonService = personService.NewPersonService(c.AuthorRepo, c.ManagerRepo, c.NarratorRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo, c.ManagerRepo)
	c.StandService = standService.NewStandService(c.StandRepo, c.PublisherRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.PublisherRepo, c.NarratorRepo)
}

func (c *Container) initHandlers() {
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.StandHandler = standHandler.NewStandHandler(c.StandService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

func (c *Container) initChangeFeed() error {
	rc := events.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		_ = rc.Close()
		return fmt.Errorf("failed to connect change feed: %w", err)
	}

	c.Redis = rc
	c.RegisterObserver(events.NewChangeFeed(rc.Client, c.Config.Redis.Channel))
	return nil
}

// RegisterObserver subscribes o to the notifications of every service.
func (c *Container) RegisterObserver(o observer.Observer) {
	c.PersonService.Register(o)
	c.PublisherService.Register(o)
	c.StandService.Register(o)
	c.BookService.Register(o)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
	logger.Debug("Container cleanup completed")
}
