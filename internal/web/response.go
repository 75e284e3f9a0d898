package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/service"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	var r errorResponse
	for _, err := range unwrap(err) {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}

// badRequest marks a request the client has to fix before retrying.
type badRequest struct {
	err error
}

func (b badRequest) Error() string {
	return b.err.Error()
}

func (b badRequest) Unwrap() error {
	return b.err
}

var (
	invalidInput = []error{
		domain.ErrInvalidRuns,
		domain.ErrInvalidOvers,
		domain.ErrInvalidInningsPerTeam,
		domain.ErrInvalidCall,
		domain.ErrInvalidDecision,
		domain.ErrUnknownTeam,
		domain.ErrNotAtCrease,
		domain.ErrCorruptSnapshot,
		domain.ErrUnsupportedSnapshot,
		service.ErrEmptyName,
		service.ErrInvalidExport,
	}
	notFound = []error{
		service.ErrMatchNotFound,
		service.ErrPlayerNotFound,
		service.ErrInningsNotFound,
	}
	conflict = []error{
		domain.ErrInningsComplete,
		domain.ErrInningsClosed,
		domain.ErrBatterOut,
		domain.ErrNothingToUndo,
		domain.ErrNoInnings,
		domain.ErrMatchComplete,
		domain.ErrInningsInProgress,
		domain.ErrSameTeamTwice,
		domain.ErrTossComplete,
		domain.ErrTossNotCalled,
		service.ErrTooFewPlayers,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func statusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, new(badRequest)), isAny(err, invalidInput):
		return fiber.StatusBadRequest
	case isAny(err, notFound):
		return fiber.StatusNotFound
	case isAny(err, conflict):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
