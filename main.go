package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-marketplace/constants"
	"gin-marketplace/controllers"
	"gin-marketplace/infra"
	"gin-marketplace/middlewares"
	"gin-marketplace/models"
	"gin-marketplace/repositories"
	"gin-marketplace/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository)
	cartController := controllers.NewCartController(cartService)

	authController := controllers.NewAuthController(authService, itemService, cartService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.GET("/profile", middlewares.AuthMiddleware(authService), authController.Profile)

	itemRouter := r.Group("/items")
	itemRouterWithAuth := r.Group("/items", middlewares.AuthMiddleware(authService))
	itemRouterWithAdminAuth := r.Group("/items",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin))

	itemRouter.GET("", itemController.FindAll)
	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAdminAuth.PUT("/:id", itemController.Update)
	itemRouterWithAdminAuth.DELETE("/:id", itemController.Delete)

	cartRouter := r.Group("/cart", middlewares.AuthMiddleware(authService))
	cartRouter.POST("", cartController.Add)
	cartRouter.GET("", cartController.FindAll)
	cartRouter.DELETE("/:itemId", cartController.Remove)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartEntry{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// 処理中のリクエストを待ってからコネクションプールを閉じる
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	infra.CloseDB(db)
	log.Println("Server exited")
}
