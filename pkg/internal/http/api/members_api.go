package api

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func getVoter(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	voter, err := actions.GetVoterData(c.UserContext(), c.Params("address"))
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(voter)
}

func getCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	candidate, err := actions.GetCandidateData(c.UserContext(), c.Params("address"))
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(candidate)
}

func listPendingVoters(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	voters, err := actions.GetVotersToBeAllowed(c.UserContext())
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(fiber.Map{
		"count": len(voters),
		"data":  voters,
	})
}

func listPendingCandidates(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	candidates, err := actions.GetCandidatesToBeAllowed(c.UserContext())
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(fiber.Map{
		"count": len(candidates),
		"data":  candidates,
	})
}
