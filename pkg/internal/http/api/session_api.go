package api

import (
	"errors"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/gofiber/fiber/v2"
)

func getSession(c *fiber.Ctx) error {
	if session.C == nil {
		return c.JSON(session.State{SidebarOpen: true})
	}
	return c.JSON(session.C.Snapshot())
}

func connectSession(c *fiber.Ctx) error {
	if session.C == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, session.ErrNoWallet.Error())
	}
	if err := session.C.Connect(c.UserContext()); err != nil {
		switch {
		case errors.Is(err, session.ErrNoWallet):
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		case chain.IsUserRejected(err):
			return fiber.NewError(fiber.StatusBadRequest, "Connection rejected by user.")
		default:
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
	}
	return c.JSON(session.C.Snapshot())
}

func disconnectSession(c *fiber.Ctx) error {
	if session.C != nil {
		session.C.Disconnect()
	}
	return c.SendStatus(fiber.StatusOK)
}

func refreshSession(c *fiber.Ctx) error {
	if session.C == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, session.ErrNoWallet.Error())
	}
	if err := session.C.Refresh(c.UserContext()); err != nil {
		if errors.Is(err, session.ErrStaleSession) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return exts.ActionError(err)
	}
	return c.JSON(session.C.Snapshot())
}

func toggleSidebar(c *fiber.Ctx) error {
	if session.C == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, session.ErrNoWallet.Error())
	}
	return c.JSON(fiber.Map{"sidebar_open": session.C.ToggleSidebar()})
}
