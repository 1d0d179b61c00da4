package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Minerv04ka/lab7web2025/internal/config"
	"github.com/Minerv04ka/lab7web2025/internal/infrastructure/database"
	"github.com/Minerv04ka/lab7web2025/pkg/logger"

	bookHandler "github.com/Minerv04ka/lab7web2025/internal/domains/book/handler"
	bookRepo "github.com/Minerv04ka/lab7web2025/internal/domains/book/repository"
	bookService "github.com/Minerv04ka/lab7web2025/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Struct này là "root" của dependency graph; mọi thành phần là
// singleton sống suốt process lifetime.
type Container struct {
	// Infrastructure layer
	Config *config.Config
	DB     *database.SQLiteDB

	// Repository layer (data access)
	BookRepo bookRepo.RepositoryInterface

	// Service layer (business logic)
	BookService bookService.ServiceInterface

	// Handler layer (HTTP)
	BookHandler *bookHandler.Handler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Logger - phụ thuộc Config
// 3. Database (open + migrate) - phụ thuộc Config
// 4. Repository → Service → Handler
//
// Lỗi ở bất kỳ bước nào là fatal - application không start.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE LOGGER
	// ========================================
	if err := logger.Init(cfg.App.Environment, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	log.Printf("✅ Logger initialized (file: %s)", cfg.Log.File)

	// ========================================
	// STEP 3: INITIALIZE DATABASE
	// ========================================
	db := database.NewSQLiteDB(&database.DBConfig{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 4: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.BookRepo = bookRepo.NewSQLiteRepository(db.DB)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup giải phóng resources khi application shutdown.
// Được gọi qua defer trong Serve() - chạy trên mọi exit path.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		}
	}
}
