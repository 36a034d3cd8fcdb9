package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/directory"
	"smartmeet/pkg/log"
)

// Handler is the public interface for the directory HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
}

type handler struct {
	l   log.Logger
	dir *directory.Directory
}

// New creates a new HTTP handler for the contact directory.
func New(l log.Logger, dir *directory.Directory) *handler {
	return &handler{
		l:   l,
		dir: dir,
	}
}
