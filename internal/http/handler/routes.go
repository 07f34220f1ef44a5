package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrscaffold/internal/hr"
	"hrscaffold/internal/model"
)

// status returns a handler that answers with the fixed placeholder payload.
// Every placeholder route is a canned response; there are no error paths.
func status(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.StatusResponse{
			Message: message,
			Status:  "success",
		})
	}
}

// Root handles GET /.
func Root() fiber.Handler {
	return status("Welcome to the HR System example application")
}

// Ping handles GET /api/ping.
func Ping() fiber.Handler {
	return status("HR System API is reachable")
}

// Info handles GET /api/info.
func Info() fiber.Handler {
	return status("HR System scaffold: employee lifecycle, payroll and compliance modules are under construction")
}

// VersionInfo handles GET /api/version, surfacing the HR module version.
func VersionInfo() fiber.Handler {
	return status(fmt.Sprintf("HR System module version %s", hr.Version))
}

// HealthCheck reports service health and uptime since startedAt.
// There is no backing store to ping, so a running process is a healthy one.
func HealthCheck(startedAt time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.HealthResponse{
			Status:    "healthy",
			UptimeSec: int64(time.Since(startedAt).Seconds()),
		})
	}
}

// LivenessProbe is a bare 200 liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, startedAt time.Time) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health surface used by the smoke-test probe
	app.Get("/health", HealthCheck(startedAt))
	app.Get("/healthz", LivenessProbe())

	// Placeholder routes
	app.Get("/", Root())
	app.Get("/api/ping", Ping())
	app.Get("/api/info", Info())
	app.Get("/api/version", VersionInfo())
}
