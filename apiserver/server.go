package apiserver

import (
	goctx "context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/netrixframework/evd/config"
	"github.com/netrixframework/evd/dist"
	"github.com/netrixframework/evd/log"
	"github.com/netrixframework/evd/util"
)

// MaxSampleSize is the largest n accepted by the `/sample` route
const MaxSampleSize = 10000

// APIServer runs a HTTP server that evaluates the distributions
type APIServer struct {
	router      *gin.Engine
	gen         *util.Counter
	defaultSeed dist.Seed
	logger      *log.Logger

	server *http.Server
	addr   string

	running bool
	lock    *sync.Mutex
}

// NewAPIServer instantiates APIServer
func NewAPIServer(conf *config.Config, logger *log.Logger) *APIServer {
	server := &APIServer{
		gen:         util.NewCounter(),
		defaultSeed: conf.DefaultSeed(),
		logger:      logger.With(log.LogParams{"service": "APIServer"}),
		addr:        conf.APIServerAddr,
		lock:        new(sync.Mutex),
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(server.logMiddleware)

	router.GET("/distributions", server.handleDistributions)
	router.POST("/evaluate", server.HandleEvaluate)
	router.POST("/sample", server.HandleSample)

	server.router = router
	server.server = &http.Server{
		Addr:    server.addr,
		Handler: router,
	}

	return server
}

// Handler returns the http handler serving the routes
func (a *APIServer) Handler() http.Handler {
	return a.router
}

func (a *APIServer) logMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery

	// Process request
	c.Next()

	end := time.Now()
	if raw != "" {
		path = path + "?" + raw
	}
	a.logger.With(log.LogParams{
		"request_id":  a.gen.Next(),
		"latency":     end.Sub(start).String(),
		"client_ip":   c.ClientIP(),
		"method":      c.Request.Method,
		"status_code": c.Writer.Status(),
		"error":       c.Errors.ByType(gin.ErrorTypePrivate).String(),
		"body_size":   c.Writer.Size(),
		"path":        path,
	}).Debug("Handled request")
}

// Running reports whether Start was called and Stop was not
func (a *APIServer) Running() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.running
}

// Start starts listening in the background
func (a *APIServer) Start() {
	a.lock.Lock()
	a.running = true
	a.lock.Unlock()
	go func() {
		a.logger.With(log.LogParams{
			"addr": a.addr,
		}).Info("API server starting!")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.With(log.LogParams{
				"addr": a.addr,
				"err":  err,
			}).Error("API server closed!")
		}
	}()
}

// Stop shuts the server down, waiting up to 5 seconds for open requests
func (a *APIServer) Stop() {
	a.lock.Lock()
	a.running = false
	a.lock.Unlock()
	ctx, cancel := goctx.WithTimeout(goctx.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("API server forcefully shutdown")
	}
	a.logger.Info("API server stopped!")
}
