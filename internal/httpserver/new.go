package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartmeet/internal/directory"
	"smartmeet/internal/meeting"
	"smartmeet/internal/middleware"
	"smartmeet/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          *middleware.Middleware

	// Meeting domain
	meetingUC meeting.UseCase

	// Contact directory
	dir *directory.Directory
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  *middleware.Middleware

	// Meeting domain
	MeetingUseCase meeting.UseCase

	// Contact directory
	Directory *directory.Directory
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		meetingUC:   cfg.MeetingUseCase,
		dir:         cfg.Directory,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	if srv.meetingUC == nil {
		return errors.New("meeting usecase is required")
	}
	if srv.dir == nil {
		return errors.New("directory is required")
	}
	return nil
}
