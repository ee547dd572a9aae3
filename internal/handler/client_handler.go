package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"tariffwatch/internal/session"

	"github.com/gin-gonic/gin"
)

type ClientStore interface {
	Clients() []string
	AddClient(name string) error
	RemoveClient(name string) error
}

type ClientHandler struct {
	store ClientStore
}

func NewClientHandler(store ClientStore) *ClientHandler {
	return &ClientHandler{store: store}
}

func (h *ClientHandler) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, ClientsResponse{Clients: h.store.Clients()})
}

func (h *ClientHandler) AddClient(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid add client request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.store.AddClient(req.Name)
	switch {
	case errors.Is(err, session.ErrEmptyClient):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	case errors.Is(err, session.ErrDuplicateClient):
		c.JSON(http.StatusConflict, gin.H{"error": "Client already exists"})
		return
	case err != nil:
		slog.Error("error adding client", "error", err, "client", req.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add client"})
		return
	}

	slog.Info("client added", "client", req.Name)
	c.JSON(http.StatusCreated, ClientsResponse{Clients: h.store.Clients()})
}

func (h *ClientHandler) RemoveClient(c *gin.Context) {
	name := c.Param("name")

	err := h.store.RemoveClient(name)
	if errors.Is(err, session.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		slog.Error("error removing client", "error", err, "client", name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove client"})
		return
	}

	slog.Info("client removed", "client", name)
	c.Status(http.StatusNoContent)
}

// GetHealth reports process liveness with the size of the session state.
func (h *ClientHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"clients": len(h.store.Clients()),
	})
}
