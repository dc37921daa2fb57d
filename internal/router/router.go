package router

import (
	"fmt"
	"strings"

	"github.com/timeless-style/salon-api/internal/cache"
	"github.com/timeless-style/salon-api/internal/config"
	adminhandlers "github.com/timeless-style/salon-api/internal/http/handlers/admin"
	publichandlers "github.com/timeless-style/salon-api/internal/http/handlers/public"
	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "salon"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	resetRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:forgot_password", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many password reset requests",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", cfg.Upload.Dir)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	memberAuth := MemberJWTAuthMiddleware(cfg.JWT.SecretKey, c.MemberRepo)
	adminOnly := AdminOnlyMiddleware()

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 会员认证接口
		members := apiV1.Group("/members")
		{
			members.POST("/register", publicHandler.MemberRegister)
			members.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.MemberLogin)
			members.POST("/forgot-password", RateLimitMiddleware(redisClient, resetRule, KeyByIPAndJSONField("email")), publicHandler.ForgotPassword)
			members.POST("/reset-password/:token", publicHandler.ResetPassword)

			members.GET("/profile", memberAuth, publicHandler.GetProfile)
			members.PUT("/update", memberAuth, publicHandler.UpdateProfile)

			members.GET("/all", memberAuth, adminOnly, adminHandler.ListMembers)
			members.DELETE("/:id", memberAuth, adminOnly, adminHandler.DeleteMember)
		}

		// 商品
		products := apiV1.Group("/products")
		{
			products.GET("/all", publicHandler.ListProducts)
			products.GET("/:id", publicHandler.GetProduct)
			products.POST("/create", memberAuth, adminOnly, adminHandler.CreateProduct)
			products.PUT("/:id", memberAuth, adminOnly, adminHandler.UpdateProduct)
			products.DELETE("/:id", memberAuth, adminOnly, adminHandler.DeleteProduct)
		}

		// 服务项目
		services := apiV1.Group("/services")
		{
			services.GET("/all", publicHandler.ListSalonServices)
			services.GET("/:id", publicHandler.GetSalonService)
			services.POST("/create", memberAuth, adminOnly, adminHandler.CreateSalonService)
			services.PUT("/:id", memberAuth, adminOnly, adminHandler.UpdateSalonService)
			services.DELETE("/:id", memberAuth, adminOnly, adminHandler.DeleteSalonService)
		}

		// 发型师
		stylists := apiV1.Group("/stylists")
		{
			stylists.GET("/all", publicHandler.ListStylists)
			stylists.GET("/:id", publicHandler.GetStylist)
			stylists.POST("/create", memberAuth, adminOnly, adminHandler.CreateStylist)
			stylists.PUT("/:id", memberAuth, adminOnly, adminHandler.UpdateStylist)
			stylists.DELETE("/:id", memberAuth, adminOnly, adminHandler.DeleteStylist)
		}

		// 作品集
		gallery := apiV1.Group("/gallery")
		{
			gallery.GET("/all", publicHandler.ListGalleryImages)
			gallery.POST("/create", memberAuth, adminOnly, adminHandler.CreateGalleryImage)
			gallery.PUT("/:id", memberAuth, adminOnly, adminHandler.UpdateGalleryImage)
			gallery.DELETE("/:id", memberAuth, adminOnly, adminHandler.DeleteGalleryImage)
		}

		// 预约
		appointments := apiV1.Group("/appointments")
		appointments.Use(memberAuth)
		{
			appointments.GET("/all", adminOnly, adminHandler.ListAppointments)
			appointments.GET("/my-appointments", publicHandler.ListMyAppointments)
			appointments.POST("/create", publicHandler.CreateAppointment)
			appointments.GET("/:id", publicHandler.GetAppointment)
			appointments.PUT("/:id", publicHandler.UpdateAppointment)
			appointments.DELETE("/:id", publicHandler.DeleteAppointment)
		}

		// 购物车
		cart := apiV1.Group("/cart")
		cart.Use(memberAuth)
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/add", publicHandler.AddCartItem)
			cart.PUT("/item/:itemId", publicHandler.UpdateCartItem)
			cart.DELETE("/item/:itemId", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 文件上传（管理端）
		apiV1.POST("/upload", memberAuth, adminOnly, adminHandler.UploadFile)
	}

	return r
}
