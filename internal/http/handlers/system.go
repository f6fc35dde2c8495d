package handlers

import (
	"net/http"
	"sync"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"
	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "trip planner backend is running"})
}

// DBCheck pings MySQL and reports tables the service needs but cannot find.
func DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(c.Request.Context()); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "db_unavailable", "database is not reachable: "+err.Error())
		return
	}
	missing := intdb.MissingTables(intconfig.DB, intdb.RequiredTables)
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":         "degraded",
			"missing_tables": missing,
			"request_id":     middleware.GetRequestID(c),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tables": intdb.RequiredTables})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "", "router is not ready")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
