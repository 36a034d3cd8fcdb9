package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"smartmeet/config"
	"smartmeet/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg config.HTTPServerConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(l log.Logger, cfg config.HTTPServerConfig) *Middleware {
	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}
