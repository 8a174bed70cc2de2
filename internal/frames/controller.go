package frames

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "artistic-unity/internal/errors"
)

type Controller struct {
	useCase ReadUseCase
	logger  *zap.Logger
}

func NewController(useCase ReadUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleListFrames(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.ListFrames(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetFrame(w http.ResponseWriter, r *http.Request) {
	frameID := chi.URLParam(r, "frameId")
	resp, err := c.useCase.GetFrame(r.Context(), frameID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleListSizes(w http.ResponseWriter, r *http.Request) {
	frameID := chi.URLParam(r, "frameId")
	resp, err := c.useCase.ListSizes(r.Context(), frameID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleResolveCustomizations(w http.ResponseWriter, r *http.Request) {
	frameID := chi.URLParam(r, "frameId")
	size := r.URL.Query().Get("size")
	orientation := r.URL.Query().Get("orientation")

	resp, err := c.useCase.ResolveCustomizations(r.Context(), frameID, size, orientation)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleResolveCollages(w http.ResponseWriter, r *http.Request) {
	size := r.URL.Query().Get("size")
	category := r.URL.Query().Get("category")

	resp, err := c.useCase.ResolveCollages(r.Context(), size, category)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	c.logger.Error("frames read failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
