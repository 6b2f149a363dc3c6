package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/life-reset-backend/internal/handlers"
)

func SetupRoutes(r chi.Router, h *handlers.Handler) {
	r.Get("/health", h.Health)

	// Daily log routes
	r.Get("/api/daily-logs", h.GetDailyLogs)
	r.Post("/api/daily-logs", h.CreateDailyLog)
	r.Put("/api/daily-logs", h.UpdateDailyLog)

	// Goal routes
	r.Get("/api/goals", h.GetGoals)
	r.Post("/api/goals", h.CreateGoal)
	r.Put("/api/goals", h.UpdateGoal)

	// Mind reframe routes
	r.Get("/api/mind-reframe", h.GetMindReframes)
	r.Post("/api/mind-reframe", h.CreateMindReframe)
	r.Put("/api/mind-reframe", h.UpdateMindReframe)

	// Weekly review routes
	r.Get("/api/weekly-reviews", h.GetWeeklyReviews)
	r.Post("/api/weekly-reviews", h.CreateWeeklyReview)
	r.Put("/api/weekly-reviews", h.UpdateWeeklyReview)

	// Growth plan routes
	r.Get("/api/growth-plans", h.GetGrowthPlans)
	r.Post("/api/growth-plans", h.CreateGrowthPlan)
	r.Put("/api/growth-plans", h.UpdateGrowthPlan)

	// AI coach routes
	r.Get("/api/ai-recommend", h.GetSuggestion)
	r.Post("/api/ai-recommend", h.GetInsights)

	// Notion sync routes
	r.Get("/api/notion-sync", h.NotionStatus)
	r.Post("/api/notion-sync", h.SyncToNotion)
	r.Get("/api/notion-sync/history", h.NotionSyncHistory)
}
