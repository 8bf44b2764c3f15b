// Package server exposes the routing engine over HTTP for the diagram editor
// frontend. Routing itself never fails; only malformed requests and unknown
// obstacle ids produce error responses.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schemroute/geometry"
	"schemroute/obstacles"
	"schemroute/routing"
)

// RouteRequest is the POST /route payload.
type RouteRequest struct {
	Start   geometry.Point  `json:"start"`
	End     geometry.Point  `json:"end"`
	Options routing.Options `json:"options"`
}

// New wires a gin router around the engine. The engine is single-threaded by
// contract, so callers that expect concurrent clients must serialize access
// to the handlers themselves.
func New(engine *routing.Engine) *gin.Engine {
	r := gin.Default()

	r.POST("/route", func(c *gin.Context) {
		var req RouteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, engine.RouteWire(req.Start, req.End, req.Options))
	})

	r.GET("/obstacles", func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Registry().All())
	})

	r.POST("/obstacles", func(c *gin.Context) {
		var o obstacles.Obstacle
		if err := c.ShouldBindJSON(&o); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if o.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "obstacle id is required"})
			return
		}
		engine.Registry().Add(o)
		c.JSON(http.StatusCreated, o)
	})

	r.PUT("/obstacles/:id", func(c *gin.Context) {
		var p obstacles.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !engine.Registry().Update(c.Param("id"), p) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown obstacle id"})
			return
		}
		o, _ := engine.Registry().Get(c.Param("id"))
		c.JSON(http.StatusOK, o)
	})

	r.DELETE("/obstacles/:id", func(c *gin.Context) {
		if !engine.Registry().Remove(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown obstacle id"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/obstacles", func(c *gin.Context) {
		engine.Registry().Clear()
		c.Status(http.StatusNoContent)
	})

	r.GET("/constraints", func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Constraints())
	})

	r.PUT("/constraints", func(c *gin.Context) {
		var p routing.ConstraintsPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		engine.SetConstraints(p)
		c.JSON(http.StatusOK, engine.Constraints())
	})

	return r
}
