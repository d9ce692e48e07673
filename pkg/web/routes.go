// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, incidents *database.IncidentStore) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/antispam/stats", antispamStatsHandler)
		api.GET("/antispam/incidents", antispamIncidentsHandler(incidents))
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyGuard Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// antispamStatsHandler returns the live counters of the anti-spam engine
func antispamStatsHandler(c *gin.Context) {
	engine := antispam.Get()
	if engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "AntiSpam Offline",
			"message": "El motor anti-spam no está inicializado.",
		})
		return
	}

	c.JSON(http.StatusOK, engine.Stats())
}

// antispamIncidentsHandler returns the newest incidents, optionally filtered
// by the guild query parameter
func antispamIncidentsHandler(incidents *database.IncidentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if incidents == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "Incidents Offline",
				"message": "El historial de incidentes no está disponible.",
			})
			return
		}

		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		if err != nil || limit < 1 || limit > 200 {
			limit = 50
		}

		list, err := incidents.Recent(c.Query("guild"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Database Error",
				"message": "No se pudieron recuperar los incidentes.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":     len(list),
			"incidents": list,
		})
	}
}
