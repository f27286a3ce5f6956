package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fraud-detection-backend/internal/alerts"
	"fraud-detection-backend/internal/config"
	handler "fraud-detection-backend/internal/handlers"
	"fraud-detection-backend/internal/repository"
	service "fraud-detection-backend/internal/services/fraud"
	"fraud-detection-backend/internal/services/predictor"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, hub *alerts.Hub, notifier alerts.Notifier) {
	fraudRepo := repository.NewFraudRepository(db)
	client := predictor.NewClient(cfg.PredictorBaseURL, cfg.PredictorTimeout)

	fraudService := service.NewService(
		client,
		fraudRepo,
		notifier,
		cfg.OptionsPolicy,
		cfg.PageSize,
	)

	txHandler := handler.NewTransactionHandler(fraudService)
	fraudHandler := handler.NewFraudHandler(fraudService)
	wsHandler := handler.NewWSHandler(hub)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/dashboard", fraudHandler.Dashboard)

	// Prediction
	r.POST("/predict", txHandler.Predict)
	r.GET("/transactions", txHandler.Index)
	r.POST("/transactions/predict", txHandler.Predict)
	r.GET("/get_city_data/:cityName", txHandler.CityData)

	// Dropdown vocabularies
	api := r.Group("/api")
	api.POST("/predict", txHandler.Predict)
	for _, v := range predictor.Vocabularies {
		api.GET("/"+string(v), txHandler.Vocabulary(v))
	}

	// Stored frauds
	r.GET("/fraudsList", fraudHandler.List)
	frauds := r.Group("/frauds")
	{
		frauds.GET("", fraudHandler.List)
		frauds.GET("/stats", fraudHandler.Stats)
		frauds.GET("/:id", fraudHandler.Show)
	}

	// Live feed of newly stored frauds
	r.GET("/ws/frauds", wsHandler.HandleWS)
}
