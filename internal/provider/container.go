package provider

import (
	"github.com/timeless-style/salon-api/internal/cache"
	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/queue"
	"github.com/timeless-style/salon-api/internal/repository"
	"github.com/timeless-style/salon-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	TokenStore  cache.KeyValueStore

	// Repositories
	MemberRepo       repository.MemberRepository
	ProductRepo      repository.ProductRepository
	SalonServiceRepo repository.SalonServiceRepository
	StylistRepo      repository.StylistRepository
	GalleryRepo      repository.GalleryRepository
	AppointmentRepo  repository.AppointmentRepository
	CartRepo         repository.CartRepository

	// Services
	MemberService        *service.MemberService
	PasswordResetService *service.PasswordResetService
	EmailService         *service.EmailService
	ProductService       *service.ProductService
	SalonServiceService  *service.SalonServiceService
	StylistService       *service.StylistService
	GalleryService       *service.GalleryService
	AppointmentService   *service.AppointmentService
	CartService          *service.CartService
	UploadService        *service.UploadService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 重置令牌存储：优先 Redis，未启用时回退进程内存储
	if cache.Enabled() {
		c.TokenStore = cache.NewRedisKeyValueStore(cache.Client(), cfg.Redis.Prefix)
	} else {
		logger.Warnw("provider_token_store_memory_fallback")
		c.TokenStore = cache.NewMemoryKeyValueStore()
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.MemberRepo = repository.NewMemberRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.SalonServiceRepo = repository.NewSalonServiceRepository(db)
	c.StylistRepo = repository.NewStylistRepository(db)
	c.GalleryRepo = repository.NewGalleryRepository(db)
	c.AppointmentRepo = repository.NewAppointmentRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.MemberService = service.NewMemberService(c.Config, c.MemberRepo, c.CartRepo)
	c.PasswordResetService = service.NewPasswordResetService(c.Config, c.MemberRepo, c.TokenStore, c.EmailService, c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.SalonServiceService = service.NewSalonServiceService(c.SalonServiceRepo)
	c.StylistService = service.NewStylistService(c.StylistRepo)
	c.GalleryService = service.NewGalleryService(c.GalleryRepo)
	c.AppointmentService = service.NewAppointmentService(c.AppointmentRepo, c.StylistRepo, c.SalonServiceRepo, c.MemberRepo, c.EmailService, c.QueueClient)
	c.CartService = service.NewCartService(models.DB, c.CartRepo, c.ProductRepo)
	c.UploadService = service.NewUploadService(c.Config)
}
