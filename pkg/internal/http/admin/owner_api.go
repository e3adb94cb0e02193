package admin

import (
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func changeOwner(c *fiber.Ctx) error {
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

	if err := actions.ChangeOwner(c.UserContext(), data.Address); err != nil {
		return exts.ActionError(err)
	}

	// The organizer flag of the session flips with the owner.
	if err := session.C.Refresh(c.UserContext()); err != nil {
		log.Debug().Err(err).Msg("Unable to refresh session after owner change...")
	}

	return c.SendStatus(fiber.StatusOK)
}
