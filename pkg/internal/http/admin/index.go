package admin

import "github.com/gofiber/fiber/v2"

// MapControllers registers the organizer writes. The contract rejects callers that are not the organizer.
func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/owner", changeOwner)

		admin.Post("/groups", createGroup)
		admin.Delete("/groups/:groupId", deleteGroup)
		admin.Post("/groups/:groupId/candidates", addGroupCandidate)
		admin.Delete("/groups/:groupId/candidates/:address", removeGroupCandidate)

		admin.Post("/candidates", createCandidate)
		admin.Post("/voters/:address/approve", approveVoter)
		admin.Post("/candidates/:address/approve", approveCandidate)
	}
}
