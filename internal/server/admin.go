package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	requestdomain "github.com/paylift/srbooster/internal/request/domain"
)

func (s *Server) ListPendingApprovals(c *gin.Context) {
	resp, err := s.requestSvc.ListPending(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending_requests": resp})
}

func (s *Server) ApproveRequest(c *gin.Context) {
	s.transitionRequest(c, requestdomain.RequestStatusApproved, "approved", "Request approved")
}

func (s *Server) RejectRequest(c *gin.Context) {
	s.transitionRequest(c, requestdomain.RequestStatusRejected, "rejected", "Request rejected")
}

func (s *Server) transitionRequest(c *gin.Context, target requestdomain.RequestStatus, verb, message string) {
	requestID := strings.TrimSpace(c.Param("request_id"))

	resp, err := s.requestSvc.Transition(c.Request.Context(), requestID, target)
	if err != nil {
		if errors.Is(err, requestdomain.ErrNotPending) {
			AbortWithError(c, notPendingError(verb))
			return
		}
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.AuditLog(c.Request.Context(), "request."+verb, "request", resp.RequestID, map[string]any{
			"status":     string(resp.Status),
			"updated_at": resp.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"request_id": resp.RequestID,
		"status":     resp.Status,
		"updated_at": resp.UpdatedAt,
	})
}
