package routes

import (
	"FreshStock-Backend/internal/api/handlers"
	"FreshStock-Backend/internal/middleware"
	"FreshStock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	StorageHandler handlers.StorageHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Auth()
	c.Storage()
}

func (c *Config) Users() {
	users := c.App.Group("/api/users")
	{
		users.Get("/test", func(c *fiber.Ctx) error {
			return c.JSON("users route")
		})
		users.Post("", c.UserHandler.Register)
		users.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Patch("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePassword)
		users.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Auth() {
	c.App.Post("/api/auth", c.UserHandler.Login)
}

func (c *Config) Storage() {
	storage := c.App.Group("/api/storage", c.Middleware.AuthMiddleware(c.JWTService))
	{
		storage.Get("", c.StorageHandler.GetInventory)
		storage.Post("", c.StorageHandler.AddItem)
		storage.Delete("/items/:id", c.StorageHandler.RemoveItem)
		storage.Delete("/allitems", c.StorageHandler.RemoveMatching)
		storage.Delete("/storage", c.StorageHandler.DeleteInventory)
		storage.Put("/remove_expired", c.StorageHandler.RemoveExpired)
		storage.Get("/predict_expired/:days", c.StorageHandler.PredictExpired)
	}
}
