package admin

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	var data struct {
		Name    string `json:"name" validate:"max=128"`
		Address string `json:"address"`
		Age     int    `json:"age"`
		Image   string `json:"image" validate:"omitempty,url"`
		Ipfs    string `json:"ipfs"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.CreateCandidate(c.UserContext(), services.ApplicantInput{
		Name:    data.Name,
		Address: data.Address,
		Age:     data.Age,
		Image:   data.Image,
		Ipfs:    data.Ipfs,
	}); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func approveVoter(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	if err := actions.AddVoterByApproval(c.UserContext(), c.Params("address")); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func approveCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	if err := actions.AddCandidateByApproval(c.UserContext(), c.Params("address")); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
