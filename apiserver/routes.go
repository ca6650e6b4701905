package apiserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netrixframework/evd/dist"
	"github.com/netrixframework/evd/log"
)

type evaluateRequest struct {
	dist.Params
	Distribution string  `json:"distribution" binding:"required"`
	Op           string  `json:"op" binding:"required"`
	X            float64 `json:"x"`
	Seed         *uint64 `json:"seed"`
}

type sampleRequest struct {
	dist.Params
	Distribution string  `json:"distribution" binding:"required"`
	N            int     `json:"n"`
	Seed         *uint64 `json:"seed"`
}

func (srv *APIServer) seed(s *uint64) dist.Seed {
	if s == nil {
		return srv.defaultSeed
	}
	return dist.WithSeed(*s)
}

func (srv *APIServer) handleDistributions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"distributions": dist.Names(),
	})
}

// HandleEvaluate is the handler for the route `/evaluate`
// which runs one operation of a distribution
func (srv *APIServer) HandleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.logger.With(log.LogParams{"error": err}).Info("Bad evaluate request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
		return
	}
	d, err := dist.New(req.Distribution, req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	op, err := dist.ParseOp(req.Op)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value, err := dist.Evaluate(d, op, req.X, srv.seed(req.Seed))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("result %v is not representable", value)})
		return
	}

	srv.logger.With(log.LogParams{
		"distribution": req.Distribution,
		"op":           op,
		"x":            req.X,
	}).Debug("Evaluated")
	c.JSON(http.StatusOK, gin.H{"value": value})
}

// HandleSample is the handler for the route `/sample`
// which draws n variates from one stream
func (srv *APIServer) HandleSample(c *gin.Context) {
	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.logger.With(log.LogParams{"error": err}).Info("Bad sample request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
		return
	}
	if req.N > MaxSampleSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("n must be at most %d", MaxSampleSize)})
		return
	}
	d, err := dist.New(req.Distribution, req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	values, err := dist.Sample(d, srv.seed(req.Seed), req.N)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, v := range values {
		if math.IsInf(v, 0) {
			err = errors.New("sample contains an infinite value")
			break
		}
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": values})
}
