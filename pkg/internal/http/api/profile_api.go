package api

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func getProfile(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}
	account, err := exts.CurrentAccount()
	if err != nil {
		return err
	}

	profile, err := actions.GetProfile(c.UserContext(), account)
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(profile)
}

func getApplied(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}
	account, err := exts.CurrentAccount()
	if err != nil {
		return err
	}

	voter, err := actions.CheckIfAlreadyAppliedToBeVoter(c.UserContext(), account)
	if err != nil {
		return exts.ActionError(err)
	}
	candidate, err := actions.CheckIfAlreadyAppliedToBeCandidate(c.UserContext(), account)
	if err != nil {
		return exts.ActionError(err)
	}

	return c.JSON(fiber.Map{
		"voter":     voter,
		"candidate": candidate,
	})
}

func updateProfileImage(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}

	var data struct {
		URL string `json:"url" validate:"omitempty,url"`
		CID string `json:"cid"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.UpdateVoterImage(c.UserContext(), data.URL, data.CID); err != nil {
		return exts.ActionError(err)
	}

	if err := session.C.Refresh(c.UserContext()); err != nil {
		log.Debug().Err(err).Msg("Unable to refresh session after image update...")
	}

	return c.SendStatus(fiber.StatusOK)
}

type applicantRequest struct {
	Name    string `json:"name" validate:"max=128"`
	Address string `json:"address"`
	Age     int    `json:"age"`
	Image   string `json:"image" validate:"omitempty,url"`
	Ipfs    string `json:"ipfs"`
}

func (v applicantRequest) input(fallbackAddress string) services.ApplicantInput {
	address := v.Address
	if len(address) == 0 {
		address = fallbackAddress
	}
	return services.ApplicantInput{
		Name:    v.Name,
		Address: address,
		Age:     v.Age,
		Image:   v.Image,
		Ipfs:    v.Ipfs,
	}
}

func applyToBeVoter(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}
	account, err := exts.CurrentAccount()
	if err != nil {
		return err
	}

	var data applicantRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.ApplyToBeVoter(c.UserContext(), data.input(account)); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func applyToBeCandidate(c *fiber.Ctx) error {
	actions, err := exts.EnsureConnected()
	if err != nil {
		return err
	}
	account, err := exts.CurrentAccount()
	if err != nil {
		return err
	}

	var data applicantRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := actions.ApplyToBeCandidate(c.UserContext(), data.input(account)); err != nil {
		return exts.ActionError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
