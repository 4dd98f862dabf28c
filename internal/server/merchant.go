package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetMerchant(c *gin.Context) {
	mid := strings.TrimSpace(c.Param("mid"))

	resp, err := s.merchantSvc.Get(c.Request.Context(), mid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetMerchantFeatures(c *gin.Context) {
	mid := strings.TrimSpace(c.Param("mid"))

	resp, err := s.matcherSvc.Match(c.Request.Context(), mid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetSRBooster(c *gin.Context) {
	mid := strings.TrimSpace(c.Param("mid"))

	resp, err := s.merchantSvc.SRBooster(c.Request.Context(), mid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"merchant": resp})
}
