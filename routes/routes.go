package routes

import (
	"github.com/moeinteractive/ohtommys-sub000/configs"
	"github.com/moeinteractive/ohtommys-sub000/controllers"
	"github.com/moeinteractive/ohtommys-sub000/middlewares"
	"github.com/moeinteractive/ohtommys-sub000/repository"
	"github.com/moeinteractive/ohtommys-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	itemRepo := repository.NewMenuItemRepository(db)
	sideRepo := repository.NewSideRepository(db)
	specialRepo := repository.NewSpecialRepository(db)
	eventRepo := repository.NewEventRepository(db)
	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	// Services
	menuSvc := services.NewMenuService(db, itemRepo)
	sideSvc := services.NewSideService(sideRepo)
	specialSvc := services.NewSpecialService(specialRepo, itemRepo)
	eventSvc := services.NewEventService(eventRepo)
	contentSvc := services.NewContentService(contentRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	mailer := &services.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}
	appSvc := services.NewApplicationService(appRepo, mailer, cfg.HiringInbox)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	sideCtrl := controllers.NewSideController(sideSvc)
	specialCtrl := controllers.NewSpecialController(specialSvc)
	eventCtrl := controllers.NewEventController(eventSvc)
	contentCtrl := controllers.NewContentController(contentSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	appCtrl := controllers.NewApplicationController(appSvc)

	// Public site
	r.GET("/menu", menuCtrl.PublicMenu)
	r.GET("/menu/:id", menuCtrl.Get)
	r.GET("/specials", menuCtrl.PublicSpecials)
	r.GET("/sides", sideCtrl.ListActive)
	r.GET("/events", eventCtrl.List)
	r.GET("/content", contentCtrl.List)
	r.GET("/content/:key", contentCtrl.Get)
	r.POST("/applications", appCtrl.Submit)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Back office (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu-items", menuCtrl.List)
		admin.GET("/menu-items/:id", menuCtrl.Get)
		admin.POST("/menu-items", menuCtrl.Create)
		admin.PUT("/menu-items/:id", menuCtrl.Update)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)

		admin.GET("/sides", sideCtrl.List)
		admin.GET("/sides/:id", sideCtrl.Get)
		admin.POST("/sides", sideCtrl.Create)
		admin.PUT("/sides/:id", sideCtrl.Update)
		admin.DELETE("/sides/:id", sideCtrl.Delete)

		admin.GET("/specials", specialCtrl.List)
		admin.POST("/specials", specialCtrl.Create)
		admin.PUT("/specials/:id", specialCtrl.Update)
		admin.DELETE("/specials/:id", specialCtrl.Delete)

		admin.GET("/events/:id", eventCtrl.Get)
		admin.POST("/events", eventCtrl.Create)
		admin.PUT("/events/:id", eventCtrl.Update)
		admin.DELETE("/events/:id", eventCtrl.Delete)

		admin.PUT("/content/:key", contentCtrl.Set)

		admin.GET("/applications", appCtrl.List)
	}
}
