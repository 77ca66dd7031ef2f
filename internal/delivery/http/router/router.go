// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"finboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	DocumentHandler  *handler.DocumentHandler
	ChatHandler      *handler.ChatHandler
	FinancialHandler *handler.FinancialHandler
	NewsHandler      *handler.NewsHandler
	AnalysisHandler  *handler.AnalysisHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	documentHandler  *handler.DocumentHandler
	chatHandler      *handler.ChatHandler
	financialHandler *handler.FinancialHandler
	newsHandler      *handler.NewsHandler
	analysisHandler  *handler.AnalysisHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		documentHandler:  params.DocumentHandler,
		chatHandler:      params.ChatHandler,
		financialHandler: params.FinancialHandler,
		newsHandler:      params.NewsHandler,
		analysisHandler:  params.AnalysisHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.GET("/:userId/documents", r.documentHandler.ListUserDocuments)
		userGroup.GET("/:userId/chat", r.chatHandler.GetHistory)
		userGroup.GET("/:userId/financial-data", r.financialHandler.ListUserFinancialData)
	}

	// Document routes
	documentGroup := api.Group("/documents")
	{
		documentGroup.POST("", r.documentHandler.UploadDocument)
		documentGroup.GET("/:id", r.documentHandler.GetDocument)
		documentGroup.PATCH("/:id/analysis", r.documentHandler.ReplaceAnalysis)
		documentGroup.DELETE("/:id", r.documentHandler.DeleteDocument)
	}

	// Advisor chat
	api.POST("/chat", r.chatHandler.SendMessage)

	// Financial records
	financialGroup := api.Group("/financial-data")
	{
		financialGroup.POST("", r.financialHandler.CreateFinancialData)
		financialGroup.GET("/:id", r.financialHandler.GetFinancialData)
		financialGroup.PATCH("/:id", r.financialHandler.UpdateFinancialData)
		financialGroup.DELETE("/:id", r.financialHandler.DeleteFinancialData)
	}

	// News feed
	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.ListNews)
		newsGroup.POST("", r.newsHandler.CreateNewsItem)
		newsGroup.GET("/search", r.newsHandler.SearchNews)
		newsGroup.GET("/:id", r.newsHandler.GetNewsItem)
	}

	// Document analysis
	aiGroup := api.Group("/ai")
	{
		aiGroup.POST("/analyze-investment", r.analysisHandler.AnalyzeInvestment)
		aiGroup.POST("/analyze-forecast", r.analysisHandler.AnalyzeForecast)
		aiGroup.POST("/analyze-risk", r.analysisHandler.AnalyzeRisk)
	}
}
