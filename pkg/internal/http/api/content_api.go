package api

import (
	"io"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/content"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func readFormFile(c *fiber.Ctx) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func uploadToPinata(c *fiber.Ctx) error {
	data, err := readFormFile(c)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when reading uploaded file...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image !")
	} else if content.C == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image !")
	}

	image, err := content.C.Put(c.UserContext(), data, c.FormValue("category"))
	if err != nil {
		if content.IsValidation(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image !")
	}

	return c.JSON(image)
}

// updateToPinata accepts prevURL for compatibility, only prevCID is used.
func updateToPinata(c *fiber.Ctx) error {
	data, err := readFormFile(c)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when reading uploaded file...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update image !")
	} else if content.C == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update image !")
	}

	image, err := content.C.Update(c.UserContext(), data, c.FormValue("category"), c.FormValue("prevCID"))
	if err != nil {
		if content.IsValidation(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update image !")
	}

	return c.JSON(image)
}
