package main

import (
	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加造型师
	stylists := []models.Stylist{
		{
			Name:            "Maya Chen",
			Expertise:       "Balayage, color correction",
			ExperienceYears: 9,
			Education:       "Aveda Institute, advanced color certification",
			CareerInterest:  "Editorial and runway color work",
			Description:     "Maya specializes in dimensional color and lived-in blonde looks.",
		},
		{
			Name:            "Jordan Reyes",
			Expertise:       "Precision cuts, curly hair",
			ExperienceYears: 6,
			Education:       "Vidal Sassoon Academy",
			CareerInterest:  "Texture education and curl workshops",
			Description:     "Jordan is known for sharp bobs and curl-by-curl dry cutting.",
		},
		{
			Name:            "Sofia Marino",
			Expertise:       "Bridal and event styling",
			ExperienceYears: 12,
			Education:       "Paul Mitchell The School",
			CareerInterest:  "Destination wedding styling",
			Description:     "Sofia builds soft, long-wearing updos for weddings and galas.",
		},
	}
	for _, stylist := range stylists {
		var existing models.Stylist
		if err := models.DB.Where("name = ?", stylist.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&stylist).Error; err != nil {
				stdLog.Printf("Failed to create stylist %s: %v", stylist.Name, err)
			} else {
				stdLog.Printf("Created stylist: %s", stylist.Name)
			}
		} else {
			stdLog.Printf("Stylist already exists: %s", stylist.Name)
		}
	}

	// 添加服务项目
	services := []models.SalonService{
		{
			Name:        "Signature Haircut",
			Description: "Consultation, shampoo, precision cut and blow-dry finish.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(65)),
		},
		{
			Name:        "Full Balayage",
			Description: "Hand-painted highlights with toner and bond treatment.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(220)),
		},
		{
			Name:        "Root Touch-Up",
			Description: "Single-process color on regrowth, up to one inch.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(85)),
		},
		{
			Name:        "Deep Conditioning Treatment",
			Description: "Intensive repair mask with scalp massage.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45)),
		},
		{
			Name:        "Bridal Updo",
			Description: "Trial session plus day-of event styling.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(180)),
		},
	}
	for _, svc := range services {
		var existing models.SalonService
		if err := models.DB.Where("name = ?", svc.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&svc).Error; err != nil {
				stdLog.Printf("Failed to create service %s: %v", svc.Name, err)
			} else {
				stdLog.Printf("Created service: %s", svc.Name)
			}
		} else {
			stdLog.Printf("Service already exists: %s", svc.Name)
		}
	}

	// 添加商品
	products := []models.Product{
		{
			Name:          "Hydrating Shampoo",
			Description:   "Sulfate-free daily shampoo for color-treated hair.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(28)),
			Category:      "haircare",
			StockQuantity: 40,
			ImageURL:      "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=800",
			IsActive:      true,
		},
		{
			Name:          "Repair Bond Mask",
			Description:   "Weekly treatment mask that rebuilds broken bonds.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(42)),
			Category:      "haircare",
			StockQuantity: 25,
			ImageURL:      "https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=800",
			IsActive:      true,
		},
		{
			Name:          "Texturizing Sea Salt Spray",
			Description:   "Lightweight spray for effortless beach waves.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(24)),
			Category:      "styling",
			StockQuantity: 60,
			ImageURL:      "https://images.unsplash.com/photo-1522338242992-e1a54906a8da?w=800",
			IsActive:      true,
		},
		{
			Name:          "Heat Protectant Serum",
			Description:   "Thermal shield up to 230°C with argan oil.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(32)),
			Category:      "styling",
			StockQuantity: 35,
			ImageURL:      "https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?w=800",
			IsActive:      true,
		},
		{
			Name:          "Boar Bristle Round Brush",
			Description:   "Salon-grade round brush for smooth blowouts.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(38)),
			Category:      "tools",
			StockQuantity: 18,
			ImageURL:      "https://images.unsplash.com/photo-1590159763121-7c9fd312190d?w=800",
			IsActive:      true,
		},
		{
			Name:          "Silk Pillowcase",
			Description:   "Mulberry silk pillowcase that reduces frizz overnight.",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(55)),
			Category:      "accessories",
			StockQuantity: 0,
			ImageURL:      "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=800",
			IsActive:      true,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	// 添加作品展示
	images := []models.GalleryImage{
		{
			ImageURL: "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=800",
			Caption:  "Lived-in balayage with face-framing money pieces",
		},
		{
			ImageURL: "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=800",
			Caption:  "Textured bob with curtain bangs",
		},
		{
			ImageURL: "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?w=800",
			Caption:  "Soft romantic updo for a garden wedding",
		},
		{
			ImageURL: "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=800",
			Caption:  "Vivid copper gloss over natural curls",
		},
	}
	for _, image := range images {
		var existing models.GalleryImage
		if err := models.DB.Where("image_url = ?", image.ImageURL).First(&existing).Error; err != nil {
			if err := models.DB.Create(&image).Error; err != nil {
				stdLog.Printf("Failed to create gallery image %s: %v", image.ImageURL, err)
			} else {
				stdLog.Printf("Created gallery image: %s", image.Caption)
			}
		} else {
			stdLog.Printf("Gallery image already exists: %s", image.Caption)
		}
	}

	stdLog.Printf("Seed completed")
}
