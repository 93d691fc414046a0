package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/middleware"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"github.com/labstack/echo/v4"
)

// Toggler flips a visitor's like state for an item.
type Toggler interface {
	Toggle(ctx context.Context, bearer, itemID, visitorID string) (*models.ToggleResponse, error)
}

// StatusReader reads like state and counts for a batch of items.
type StatusReader interface {
	Status(ctx context.Context, bearer string, itemIDs []string, visitorID string) (models.StatusResponse, error)
}

// LikeHandler handles HTTP requests for the like widget endpoints.
type LikeHandler struct {
	toggler Toggler
	status  StatusReader
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(toggler Toggler, status StatusReader) *LikeHandler {
	return &LikeHandler{toggler: toggler, status: status}
}

// RegisterLikeRoutes registers the widget-facing routes.
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes/toggle", h.Toggle)
	g.POST("/likes/status", h.Status)
}

// Toggle handles POST /v1/likes/toggle.
func (h *LikeHandler) Toggle(c echo.Context) error {
	var req models.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	bearer := middleware.BearerFromContext(c)
	resp, err := h.toggler.Toggle(c.Request().Context(), bearer, req.ItemID, req.VisitorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Status handles POST /v1/likes/status.
func (h *LikeHandler) Status(c echo.Context) error {
	var req models.StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	bearer := middleware.BearerFromContext(c)
	resp, err := h.status.Status(c.Request().Context(), bearer, req.ItemIDs, req.VisitorID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// writeError maps service errors onto the wire: validation problems are 400
// with the message, everything else is logged and collapsed into a generic
// 500 so no internal detail reaches the caller.
func (h *LikeHandler) writeError(c echo.Context, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	}

	c.Logger().Errorf("like request failed: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
