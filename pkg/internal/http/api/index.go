package api

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		api.Post("/uploadToPinata", uploadToPinata)
		api.Post("/updateToPinata", updateToPinata)

		sessions := api.Group("/session")
		{
			sessions.Get("/", getSession)
			sessions.Post("/connect", connectSession)
			sessions.Post("/disconnect", disconnectSession)
			sessions.Post("/refresh", refreshSession)
			sessions.Post("/sidebar", toggleSidebar)
		}

		api.Get("/dashboard", getDashboard)
		api.Get("/owner", getOwner)

		groups := api.Group("/groups")
		{
			groups.Get("/", listGroups)
			groups.Get("/:groupId", getGroup)
		}

		api.Get("/voters/:address", getVoter)
		api.Get("/candidates/:address", getCandidate)

		pending := api.Group("/pending")
		{
			pending.Get("/voters", listPendingVoters)
			pending.Get("/candidates", listPendingCandidates)
		}

		profile := api.Group("/profile")
		{
			profile.Get("/", getProfile)
			profile.Get("/applied", getApplied)
			profile.Put("/image", updateProfileImage)
		}

		apply := api.Group("/apply")
		{
			apply.Post("/voter", applyToBeVoter)
			apply.Post("/candidate", applyToBeCandidate)
		}
	}
}
