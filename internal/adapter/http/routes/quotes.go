package routes

import (
	"quote_relay/internal/adapter/http/handlers"
	"quote_relay/internal/adapter/http/middleware"
	"quote_relay/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathTrackOpen      = "/trackOpen/:quoteId"
	PathQuoteViewed    = "/quoteViewed"
	PathSendQuoteEmail = "/sendQuoteEmail"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/", handlers.Liveness)
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, auth usecase.IAuthUseCase) {
	// Public: hit by mail clients and by the quote viewer page.
	rg.GET(PathTrackOpen, quoteHandler.TrackOpen)
	rg.POST(PathQuoteViewed, quoteHandler.MarkQuoteViewed)

	rg.POST(PathSendQuoteEmail, middleware.RequireAuth(auth), quoteHandler.SendQuoteEmail)
}
