package academic

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/routes/auth"
)

// RegisterRoutes wires the reporting pages and the lookup APIs. Everything
// sits behind an active session.
func RegisterRoutes(app *fiber.App, store database.AcademicStore, users database.UserStore) {
	pages := app.Group("/academic")
	pages.Use(auth.RequireSession(users))
	pages.Get("/results", func(c *fiber.Ctx) error { return ResultsPage(c, store) })
	pages.Get("/component-performance", func(c *fiber.Ctx) error { return ComponentPerformancePage(c, store) })

	api := app.Group("/api/academic")
	api.Use(auth.RequireSession(users))
	api.Get("/years", func(c *fiber.Ctx) error { return GetYearsAPI(c, store) })
	api.Get("/courses", func(c *fiber.Ctx) error { return GetCoursesAPI(c, store) })
	api.Get("/components", func(c *fiber.Ctx) error { return GetComponentsAPI(c, store) })
}
