package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/goserg/cricketscore/internal/service"
)

type validator interface {
	Validate() error
}

func parseBody(ctx *fiber.Ctx, req validator) error {
	if err := ctx.BodyParser(req); err != nil {
		return badRequest{err: err}
	}
	if err := req.Validate(); err != nil {
		return badRequest{err: err}
	}
	return nil
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, badRequest{err: err}
	}
	return id, nil
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	return ctx.JSON(s.service.ListPlayers())
}

func (s *Server) handlePlayersCount(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"count": s.service.PlayersCount()})
}

func (s *Server) handleAddPlayer(ctx *fiber.Ctx) error {
	var req playerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	player, err := s.service.AddPlayer(ctx.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	player, err := s.service.GetPlayer(id)
	if err != nil {
		return err
	}
	return ctx.JSON(player)
}

func (s *Server) handleUpdatePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	var req playerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := s.service.UpdatePlayer(ctx.UserContext(), id, req.Name); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRemovePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.RemovePlayer(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListMatches(ctx *fiber.Ctx) error {
	return ctx.JSON(s.service.ListMatches())
}

func (s *Server) handleAddMatch(ctx *fiber.Ctx) error {
	var req createMatch
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return badRequest{err: err}
		}
	}
	req = req.withDefaults(s.match)
	if err := req.Validate(); err != nil {
		return badRequest{err: err}
	}
	match, err := s.service.AddMatch(ctx.UserContext(), req.InningsPerTeam, *req.Overs)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(match)
}

func (s *Server) handleGetMatch(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	match, err := s.service.GetMatch(id)
	if err != nil {
		return err
	}
	return ctx.JSON(match)
}

func (s *Server) handleDeleteMatch(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.DeleteMatch(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// matchCommand runs a command on the match named in the path and answers
// with the updated match.
func (s *Server) matchCommand(ctx *fiber.Ctx, run func(id uuid.UUID) (service.MatchView, error)) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}
	match, err := run(id)
	if err != nil {
		return err
	}
	return ctx.JSON(match)
}

func (s *Server) handleCallToss(ctx *fiber.Ctx) error {
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.CallToss(ctx.UserContext(), id)
	})
}

func (s *Server) handleFlipCoin(ctx *fiber.Ctx) error {
	var req flipCoin
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.FlipCoin(ctx.UserContext(), id, req.Call)
	})
}

func (s *Server) handleDecideToss(ctx *fiber.Ctx) error {
	var req tossDecision
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.DecideToss(ctx.UserContext(), id, req.Decision)
	})
}

func (s *Server) handleCompleteToss(ctx *fiber.Ctx) error {
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.CompleteToss(ctx.UserContext(), id)
	})
}

func (s *Server) handleStartInnings(ctx *fiber.Ctx) error {
	var req startInnings
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.StartInnings(ctx.UserContext(), id, req.Team)
	})
}

func (s *Server) handleAddBall(ctx *fiber.Ctx) error {
	var req addBall
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.AddBall(ctx.UserContext(), id, req.Runs, req.Wicket, req.Player)
	})
}

func (s *Server) handleUndoLastBall(ctx *fiber.Ctx) error {
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.UndoLastBall(ctx.UserContext(), id)
	})
}

func (s *Server) handleUndoInningsBall(ctx *fiber.Ctx) error {
	number, err := strconv.Atoi(ctx.Params("number"))
	if err != nil {
		return badRequest{err: err}
	}
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.UndoInningsBall(ctx.UserContext(), id, number)
	})
}

func (s *Server) handleDeclare(ctx *fiber.Ctx) error {
	return s.matchCommand(ctx, func(id uuid.UUID) (service.MatchView, error) {
		return s.service.Declare(ctx.UserContext(), id)
	})
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.service.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Attachment("cricketscore.json")
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	if err := s.service.Import(ctx.UserContext(), ctx.Body()); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
