package admin

import (
	"encoding/json"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createGroup(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	var data struct {
		Name                     string      `json:"name" validate:"max=128"`
		Image                    string      `json:"image" validate:"omitempty,url"`
		Ipfs                     string      `json:"ipfs"`
		Description              string      `json:"description" validate:"max=4096"`
		RequiresRegisteredVoters bool        `json:"requires_registered_voters"`
		StartTime                json.Number `json:"start_time"`
		EndTime                  json.Number `json:"end_time"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.CreateGroup(c.UserContext(), services.GroupInput{
		Name:                     data.Name,
		Image:                    data.Image,
		Ipfs:                     data.Ipfs,
		Description:              data.Description,
		RequiresRegisteredVoters: data.RequiresRegisteredVoters,
		StartTime:                data.StartTime.String(),
		EndTime:                  data.EndTime.String(),
	}); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func deleteGroup(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	if err := actions.DeleteGroup(c.UserContext(), c.Params("groupId")); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func addGroupCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	var data struct {
		Address string `json:"address"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.AddCandidateToGroup(c.UserContext(), c.Params("groupId"), data.Address); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func removeGroupCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	if err := actions.DeleteCandidateFromGroup(c.UserContext(), c.Params("groupId"), c.Params("address")); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
