package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/pkg/response"
	"github.com/westernstar/blog/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"phone" json:"phone" binding:"required"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Form GET /contact
func (h *ContactHandler) Form(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"fields": []string{"name", "email", "phone", "message"}}, "contact", nil)
}

// Submit POST /contact. Delivery failure surfaces as a generic notice;
// there is no retry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.Send(c.Request.Context(), application.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, application.ErrDeliveryFailed) {
			response.Error[any](c, http.StatusBadGateway, "message could not be sent", nil)
			return
		}
		response.Error[any](c, statusOf(err), "invalid submission", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "message sent", nil)
}
