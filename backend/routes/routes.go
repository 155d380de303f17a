package routes

import (
	"eduplatform/backend/config"
	"eduplatform/backend/controllers"
	"eduplatform/backend/gateway"
	"eduplatform/backend/middleware"
	"eduplatform/backend/models"
	"eduplatform/backend/store"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires every HTTP surface. The gateway is nil in demo mode;
// controllers that take it branch internally.
func SetupRoutes(app *fiber.App, st *store.Store, gw *gateway.Gateway, catalog store.Catalog, cfg *config.Config) {
	// Health
	healthController := controllers.NewHealthController(st, gw, cfg)
	app.Get("/api/health", healthController.Check)

	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg, st)
	staffMiddleware := middleware.RequireRole(st, models.RoleTeacher, models.RoleAdmin)
	adminMiddleware := middleware.RequireRole(st, models.RoleAdmin)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)
	app.Get("/api/auth/me", authMiddleware, authController.Me)
	app.Put("/api/auth/profile", authMiddleware, authController.UpdateProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(st, gw, catalog, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Get("/:id/lessons/:lessonId/access", coursesController.CanAccessLesson)
	app.Post("/api/enrollments/free", authMiddleware, coursesController.Enroll)

	// Progress routes
	progressController := controllers.NewProgressController(st, gw, cfg)
	courses.Post("/:id/lessons/:lessonId/complete", progressController.CompleteLesson)
	courses.Post("/:id/lessons/:lessonId/watch", progressController.RecordWatchTime)
	app.Get("/api/progress/overview", authMiddleware, progressController.Overview)
	app.Get("/api/achievements", authMiddleware, progressController.Achievements)

	// Quizzes routes
	quizzesController := controllers.NewQuizzesController(st, gw, cfg)
	app.Post("/api/quizzes/submit", authMiddleware, quizzesController.Submit)
	courses.Get("/:id/quiz-results", quizzesController.Results)

	// Notifications routes
	notificationsController := controllers.NewNotificationsController(st)
	notifications := app.Group("/api/notifications", authMiddleware)
	notifications.Get("/", notificationsController.List)
	notifications.Put("/read-all", notificationsController.MarkAllRead)
	notifications.Put("/:id/read", notificationsController.MarkRead)
	notifications.Delete("/:id", notificationsController.Delete)

	// Messaging routes
	messagesController := controllers.NewMessagesController(st)
	conversations := app.Group("/api/conversations", authMiddleware)
	conversations.Get("/", messagesController.ListConversations)
	conversations.Post("/", messagesController.Start)
	conversations.Get("/:id/messages", messagesController.GetMessages)
	conversations.Post("/:id/messages", messagesController.Send)
	conversations.Put("/:id/read", messagesController.MarkRead)

	// Favorites routes
	favoritesController := controllers.NewFavoritesController(st)
	app.Get("/api/favorites", authMiddleware, favoritesController.List)
	app.Post("/api/favorites/:id/toggle", authMiddleware, favoritesController.Toggle)

	// Live session routes
	liveController := controllers.NewLiveController(st)
	live := app.Group("/api/live", authMiddleware)
	live.Get("/", liveController.List)
	live.Post("/", staffMiddleware, liveController.Create)
	live.Put("/:id/status", staffMiddleware, liveController.UpdateStatus)
	live.Post("/:id/join", liveController.Join)
	live.Post("/:id/chat", liveController.Chat)

	// Discount routes
	discountsController := controllers.NewDiscountsController(st)
	app.Post("/api/discounts/validate", authMiddleware, discountsController.Validate)
	app.Post("/api/discounts/redeem", authMiddleware, discountsController.Redeem)
	app.Get("/api/discounts", authMiddleware, staffMiddleware, discountsController.List)
	app.Post("/api/discounts", authMiddleware, adminMiddleware, discountsController.Create)

	// Admin routes
	usersController := controllers.NewUsersController(st)
	app.Get("/api/admin/users", authMiddleware, adminMiddleware, usersController.List)
}
