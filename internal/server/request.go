package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	requestdomain "github.com/paylift/srbooster/internal/request/domain"
)

type createRequestBody struct {
	MID           string         `json:"mid"`
	FeatureID     string         `json:"feature_id"`
	PricingConfig map[string]any `json:"pricing_config"`
}

func (s *Server) CreateRequest(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.requestSvc.Create(c.Request.Context(), requestdomain.CreateRequest{
		MID:           strings.TrimSpace(body.MID),
		FeatureID:     strings.TrimSpace(body.FeatureID),
		PricingConfig: body.PricingConfig,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.AuditLog(c.Request.Context(), "request.create", "request", resp.RequestID, map[string]any{
			"mid":        body.MID,
			"feature_id": body.FeatureID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Request created",
		"request_id": resp.RequestID,
	})
}

func (s *Server) ListRequests(c *gin.Context) {
	resp, err := s.requestSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetRequest(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("request_id"))

	resp, err := s.requestSvc.Get(c.Request.Context(), requestID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
