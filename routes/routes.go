package routes

import (
	"canteen-backend/configs"
	"canteen-backend/controllers"
	"canteen-backend/middlewares"
	"canteen-backend/repository"
	"canteen-backend/services"
	"canteen-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "message": "canteen ordering API is running"})
	})

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, hub, cfg.FrontendURL)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Menu (read is public, management is admin)
	r.GET("/menu", menuCtrl.List)
	menu := r.Group("/menu", adminOnly)
	{
		menu.POST("", menuCtrl.Create)
		menu.PUT("/:id", menuCtrl.Update)
		menu.DELETE("/:id", menuCtrl.Delete)
		menu.POST("/:id/image", menuCtrl.UploadImage)
	}

	// Orders (customers create and track; the dashboard list and status
	// transitions sit behind the admin session)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", adminOnly, orderCtrl.List)
	r.GET("/orders/:orderId", orderCtrl.Detail)
	r.GET("/orders/:orderId/receipt", orderCtrl.Receipt)
	r.PUT("/orders/:orderId/status", adminOnly, orderCtrl.UpdateStatus)

	// Real-time order events
	r.GET("/ws/orders", hub.HandleWebSocket)
}
