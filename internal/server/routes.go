package server

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the API onto the gin engine.
func RegisterRoutes(r *gin.Engine, app *App) {
	api := r.Group("/api")
	{
		api.GET("/health", app.health)
		api.POST("/simulation/load", app.load)
		api.POST("/simulation/run", app.run)
		api.POST("/convert/ydk", app.convertYDK)
		api.GET("/deck/qr", app.deckQR)
	}
}
