package container

import (
	"context"
	"fmt"
	"time"

	"consulting-backend/internal/config"
	infraCache "consulting-backend/internal/infrastructure/cache"
	"consulting-backend/internal/infrastructure/database"
	"consulting-backend/internal/infrastructure/storage"
	"consulting-backend/pkg/cache"
	"consulting-backend/pkg/jwt"
	"consulting-backend/pkg/logger"

	"consulting-backend/internal/domains/blog"
	blogHandler "consulting-backend/internal/domains/blog/handler"
	blogRepo "consulting-backend/internal/domains/blog/repository"
	blogService "consulting-backend/internal/domains/blog/service"
	"consulting-backend/internal/domains/contact"
	contactHandler "consulting-backend/internal/domains/contact/handler"
	contactRepo "consulting-backend/internal/domains/contact/repository"
	contactService "consulting-backend/internal/domains/contact/service"
	"consulting-backend/internal/domains/team"
	teamHandler "consulting-backend/internal/domains/team/handler"
	teamRepo "consulting-backend/internal/domains/team/repository"
	teamService "consulting-backend/internal/domains/team/service"
	"consulting-backend/internal/domains/testimonial"
	testimonialHandler "consulting-backend/internal/domains/testimonial/handler"
	testimonialRepo "consulting-backend/internal/domains/testimonial/repository"
	testimonialService "consulting-backend/internal/domains/testimonial/service"
	"consulting-backend/internal/domains/user"
	userHandler "consulting-backend/internal/domains/user/handler"
	userRepo "consulting-backend/internal/domains/user/repository"
	userService "consulting-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Encoder    storage.Encoder

	BlogRepo        blog.Repository
	TeamRepo        team.Repository
	TestimonialRepo testimonial.Repository
	ContactRepo     contact.Repository
	UserRepo        user.Repository

	BlogService        blog.Service
	TeamService        team.Service
	TestimonialService testimonial.Service
	ContactService     contact.Service
	UserService        user.Service

	BlogHandler        *blogHandler.BlogHandler
	TeamHandler        *teamHandler.TeamHandler
	TestimonialHandler *testimonialHandler.TestimonialHandler
	ContactHandler     *contactHandler.ContactHandler
	UserHandler        *userHandler.UserHandler
}

// NewContainer builds the whole graph in dependency order: config,
// infrastructure, repositories, services, handlers. A failure at any
// step aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	db := database.NewPostgresDB(config.DatabaseConfigFor(c.Config))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Connect(ctx); err != nil {
		// Without the revocation store, logout cannot be honored.
		return fmt.Errorf("connect to redis: %w", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.Encoder = storage.NewImageEncoder()

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.TeamRepo = teamRepo.NewPostgresRepository(pool)
	c.TestimonialRepo = testimonialRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() error {
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.Encoder)
	c.TeamService = teamService.NewTeamService(c.TeamRepo, c.Encoder)
	c.TestimonialService = testimonialService.NewTestimonialService(c.TestimonialRepo, c.Encoder)
	c.ContactService = contactService.NewContactService(c.ContactRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Cache)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.UserService.SeedAdmin(ctx,
		c.Config.Admin.Email,
		c.Config.Admin.Password,
		c.Config.Admin.FullName,
	); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	return nil
}

func (c *Container) initHandlers() {
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)
	c.TestimonialHandler = testimonialHandler.NewTestimonialHandler(c.TestimonialService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
}
