package routes

import (
	"github.com/FEBRIAN80/managmnt-food/configs"
	"github.com/FEBRIAN80/managmnt-food/controllers"
	"github.com/FEBRIAN80/managmnt-food/middlewares"
	"github.com/FEBRIAN80/managmnt-food/repository"
	"github.com/FEBRIAN80/managmnt-food/services"
	"github.com/FEBRIAN80/managmnt-food/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	invRepo := repository.NewInventoryRepository(db)

	// Services
	cartStore := services.NewCartStore()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(cartStore, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, txnRepo)
	receiptSvc := services.NewReceiptService(cfg.Business)
	invSvc := services.NewInventoryService(db, invRepo)
	dashSvc := services.NewDashboardService(txnRepo, invRepo)

	// Notification hub
	hub := ws.NewNotifyHub()
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo, hub)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, cartStore, receiptSvc, userRepo, txnRepo, hub)
	invCtrl := controllers.NewInventoryController(invSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Register surface (cashier/admin)
	pos := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "cashier", "admin"))
	{
		pos.GET("/menus", menuCtrl.List) // ?q=
		pos.GET("/menus/:id", menuCtrl.Get)
		pos.GET("/categories", menuCtrl.ListCategories)

		pos.GET("/cart", cartCtrl.Get) // ?discount=
		pos.POST("/cart/items", cartCtrl.Add)
		pos.PATCH("/cart/items/:menuId", cartCtrl.ChangeQty)
		pos.DELETE("/cart/items/:menuId", cartCtrl.Remove)
		pos.DELETE("/cart", cartCtrl.Clear)

		pos.POST("/checkout", checkoutCtrl.Commit)
		pos.GET("/transactions", checkoutCtrl.List) // ?limit=
		pos.GET("/transactions/:id", checkoutCtrl.Detail)
		pos.GET("/transactions/:id/receipt", checkoutCtrl.Receipt)
	}

	// Notifications push
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", dashCtrl.Stats)

		admin.GET("/menus", menuCtrl.ListAll)
		admin.POST("/menus", menuCtrl.Create)
		admin.PATCH("/menus/:id", menuCtrl.Update)
		admin.DELETE("/menus/:id", menuCtrl.Delete)
		admin.POST("/categories", menuCtrl.CreateCategory)

		admin.GET("/ingredients", invCtrl.List) // ?q=
		admin.POST("/ingredients", invCtrl.Create)
		admin.PATCH("/ingredients/:id", invCtrl.Update)
		admin.POST("/ingredients/:id/movements", invCtrl.Move)
		admin.GET("/suppliers", invCtrl.ListSuppliers)
		admin.POST("/suppliers", invCtrl.CreateSupplier)

		admin.GET("/cashiers", authCtrl.ListCashiers)
		admin.POST("/cashiers", authCtrl.CreateCashier)
	}
}
