package api

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func getDashboard(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	stats, err := actions.Dashboard(c.UserContext())
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(stats)
}

func getOwner(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	owner, err := actions.GetOwner(c.UserContext())
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(fiber.Map{"owner": owner})
}
