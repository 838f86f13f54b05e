package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/enerlytics/enerlytics/internal/domain"
	"github.com/enerlytics/enerlytics/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Post("/signup", func(c *fiber.Ctx) error {
		var in service.SignupInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		u, err := svcs.Users.Register(in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	})

	app.Post("/login", func(c *fiber.Ctx) error {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		u, err := svcs.Users.Login(in.Email, in.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(u)
	})

	dash := app.Group("/dashboard/:id")

	dash.Get("/", func(c *fiber.Ctx) error {
		view, err := svcs.Dashboard.Render(c.Context(), c.Params("id"), time.Now())
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	})

	dash.Post("/devices", func(c *fiber.Ctx) error {
		var in service.DeviceInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		d, err := svcs.Devices.Add(c.Params("id"), in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	})

	dash.Put("/devices/:deviceID", func(c *fiber.Ctx) error {
		var in service.DeviceInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		d, err := svcs.Devices.Update(c.Params("id"), c.Params("deviceID"), in)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(d)
	})

	dash.Delete("/devices/:deviceID", func(c *fiber.Ctx) error {
		if err := svcs.Devices.Delete(c.Params("id"), c.Params("deviceID")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	dash.Patch("/devices/:deviceID/toggle", func(c *fiber.Ctx) error {
		d, err := svcs.Devices.Toggle(c.Params("id"), c.Params("deviceID"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(d)
	})
}

// fail maps service errors onto HTTP statuses: missing records 404,
// ownership 403, validation/duplicates 400, bad credentials 401,
// everything else 500 with the message.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalid), errors.Is(err, service.ErrEmailTaken):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
