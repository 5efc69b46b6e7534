package server

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/ncobase/nasadmin/ctxutil"
	"github.com/ncobase/nasadmin/ecode"
	"github.com/ncobase/nasadmin/net/resp"
	"github.com/sirupsen/logrus"
)

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ctxutil.TraceMiddleware())
	r.Use(s.recovery())
	r.Use(s.loggerMiddleware())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/:resource", s.list)
	api.GET("/:resource/:id", s.get)
	api.GET("/:resource/:id/:child", s.listChildren)

	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound(ecode.NotExist(c.Request.URL.Path)))
	})
	return r
}

// recovery reports panics to sentry, when it is initialized, and answers 500
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		ctx := c.Request.Context()
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			local := hub.Clone()
			local.Scope().SetTag("trace_id", ctxutil.GetTraceID(ctx))
			local.Scope().SetRequest(c.Request)
			local.RecoverWithContext(ctx, recovered)
		}
		s.logger.Errorf(ctx, "panic serving %s: %v", c.Request.URL.Path, recovered)
		resp.Fail(c.Writer, resp.InternalServer(fmt.Sprint(recovered)))
		c.Abort()
	})
}

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.EntryWithFields(c.Request.Context(), logrus.Fields{
			"method":   method,
			"path":     path,
			"query":    c.Request.URL.RawQuery,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       ctxutil.GetClientIP(c.Request.Context()),
		}).Info("HTTP request")
	}
}
