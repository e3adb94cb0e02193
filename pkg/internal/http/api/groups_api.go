package api

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func listGroups(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	groups, err := actions.GetGroups(c.UserContext())
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	group, err := actions.GetGroup(c.UserContext(), c.Params("groupId"))
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(group)
}
