package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/chcorophyll/Free-Public-Toilet-Map/store"
)

// Server serves the read-only toilet map HTTP API.
type Server struct {
	router *gin.Engine

	mongoStore store.MongoStore

	traceMode bool
}

// NewServer returns a Server backed by the given store. When traceMode is
// set, incoming requests are dumped to the log.
func NewServer(mongoStore store.MongoStore, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		traceMode:  traceMode,
	}
}

// Run starts listening on the given address.
func (s *Server) Run(addr string) error {
	s.router = s.setupRouter()
	return s.router.Run(addr)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestID)
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	v1 := r.Group("/api/v1")
	{
		toilets := v1.Group("/toilets")
		toilets.GET("", s.listNearbyToilets)
		toilets.GET("/nearest", s.listNearestToilets)
		toilets.GET("/:toiletID", s.getToilet)
	}

	return r
}

// RequestID stamps each request with an id for log correlation.
func (s *Server) RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header("X-Request-Id", id)
	c.Next()

	for _, err := range c.Errors {
		log.WithField("prefix", "gin").WithField("request_id", id).WithError(err).Error("request error")
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
