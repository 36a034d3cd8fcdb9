package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dirHTTP "smartmeet/internal/directory/delivery/http"
	meetingHTTP "smartmeet/internal/meeting/delivery/http"
)

// setupMeetingDomain registers the meeting routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
//
// Repositories and usecases are wired in cmd/api/main.go and handed in
// through the Config bag.
func (srv HTTPServer) setupMeetingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := meetingHTTP.New(srv.l, srv.meetingUC)
	meetingHTTP.RegisterRoutes(api.Group("/meetings"), h, srv.mw)

	srv.l.Infof(ctx, "Meeting domain registered at /api/v1/meetings")
	return nil
}

// setupDirectoryDomain registers the contact directory routes.
func (srv HTTPServer) setupDirectoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := dirHTTP.New(srv.l, srv.dir)
	dirHTTP.RegisterRoutes(api.Group("/participants"), h)

	srv.l.Infof(ctx, "Directory domain registered at /api/v1/participants (%d contacts)", srv.dir.Len())
	return nil
}
