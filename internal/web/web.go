package web

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goserg/cricketscore/internal/config"
	"github.com/goserg/cricketscore/internal/service"
	"github.com/goserg/cricketscore/internal/web/webpath"
	"github.com/sirupsen/logrus"
)

// Server exposes the scoring commands and computed views as a JSON API.
type Server struct {
	service *service.Service
	app     *fiber.App
	cfg     config.Server
	match   config.Match
	log     *logrus.Entry
}

func New(l *logrus.Logger, svc *service.Service, cfg config.Config) *Server {
	server := Server{
		service: svc,
		cfg:     cfg.Server,
		match:   cfg.Match,
		log:     l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Server.Debug,
	})
	app.Use(recover.New(), server.logRequest)

	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})
	app.Get(webpath.Api, func(ctx *fiber.Ctx) error {
		return ctx.JSON(webpath.Path())
	})

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleAddPlayer)
	app.Get(webpath.ApiPlayersCount, server.handlePlayersCount)
	app.Get(webpath.ApiPlayer, server.handleGetPlayer)
	app.Put(webpath.ApiPlayer, server.handleUpdatePlayer)
	app.Delete(webpath.ApiPlayer, server.handleRemovePlayer)

	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatches, server.handleAddMatch)
	app.Get(webpath.ApiMatch, server.handleGetMatch)
	app.Delete(webpath.ApiMatch, server.handleDeleteMatch)
	app.Post(webpath.ApiTossCall, server.handleCallToss)
	app.Post(webpath.ApiTossFlip, server.handleFlipCoin)
	app.Post(webpath.ApiTossDecision, server.handleDecideToss)
	app.Post(webpath.ApiTossComplete, server.handleCompleteToss)
	app.Post(webpath.ApiInnings, server.handleStartInnings)
	app.Delete(webpath.ApiInningsLastBall, server.handleUndoInningsBall)
	app.Post(webpath.ApiBalls, server.handleAddBall)
	app.Delete(webpath.ApiLastBall, server.handleUndoLastBall)
	app.Post(webpath.ApiDeclare, server.handleDeclare)

	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.handleImport)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) logRequest(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	status := ctx.Response().StatusCode()
	if err != nil {
		status = statusOf(err)
	}
	s.log.WithFields(logrus.Fields{
		"method":  ctx.Method(),
		"path":    ctx.Path(),
		"status":  status,
		"elapsed": time.Since(start),
	}).Debug("request")
	return err
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(code).JSON(newErrorResponse(err))
}
