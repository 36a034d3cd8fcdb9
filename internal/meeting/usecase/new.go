package usecase

import (
	"smartmeet/internal/directory"
	"smartmeet/internal/meeting/repository"
	"smartmeet/internal/parser"
	"smartmeet/pkg/datemath"
	pkgLog "smartmeet/pkg/log"
)

const (
	defaultBusinessStartHour = 9
	defaultBusinessEndHour   = 17

	// slotStepMinutes is the suggestion grid: slots start on half hours.
	slotStepMinutes = 30

	defaultMaxSlots = 5

	// maxNameSuggestions caps fuzzy matches returned per unresolved name.
	maxNameSuggestions = 5
)

type implUseCase struct {
	l                 pkgLog.Logger
	engine            parser.Engine
	dir               *directory.Directory
	repo              repository.MeetingRepository
	dates             *datemath.Parser
	businessStartHour int
	businessEndHour   int
}

// New creates a new meeting UseCase instance. Business hours bound the
// slot suggestion grid; out-of-range values fall back to 09:00-17:00.
func New(
	l pkgLog.Logger,
	engine parser.Engine,
	dir *directory.Directory,
	repo repository.MeetingRepository,
	dates *datemath.Parser,
	businessStartHour int,
	businessEndHour int,
) *implUseCase {
	if businessStartHour <= 0 || businessEndHour <= businessStartHour || businessEndHour > 24 {
		businessStartHour = defaultBusinessStartHour
		businessEndHour = defaultBusinessEndHour
	}
	return &implUseCase{
		l:                 l,
		engine:            engine,
		dir:               dir,
		repo:              repo,
		dates:             dates,
		businessStartHour: businessStartHour,
		businessEndHour:   businessEndHour,
	}
}
