package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListFeatures(c *gin.Context) {
	resp, err := s.featureSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetFeature(c *gin.Context) {
	featureID := strings.TrimSpace(c.Param("feature_id"))

	resp, err := s.featureSvc.Get(c.Request.Context(), featureID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
