package exts

import (
	"errors"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every failure as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// ActionError converts an action layer failure into a response error.
func ActionError(err error) error {
	var actionErr *services.ActionError
	if !errors.As(err, &actionErr) {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	switch actionErr.Code {
	case services.ErrNotConnected:
		return fiber.NewError(fiber.StatusUnauthorized, actionErr.Message)
	case services.ErrInfrastructure:
		return fiber.NewError(fiber.StatusBadGateway, actionErr.Message)
	default:
		return fiber.NewError(fiber.StatusBadRequest, actionErr.Message)
	}
}

// EnsureConnected returns the action layer of the current session.
func EnsureConnected() (*services.Actions, error) {
	if session.C == nil {
		return nil, ActionError(services.NotConnectedError())
	}
	actions, err := session.C.Actions()
	if err != nil {
		return nil, ActionError(err)
	}
	return actions, nil
}

// CurrentAccount returns the connected account, or a 401.
func CurrentAccount() (string, error) {
	if session.C == nil {
		return "", ActionError(services.NotConnectedError())
	}
	state := session.C.Snapshot()
	if !state.Connected {
		return "", ActionError(services.NotConnectedError())
	}
	return state.Account, nil
}
