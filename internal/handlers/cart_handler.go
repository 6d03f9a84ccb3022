package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/internal/validation"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validation.Validator
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, validate *validation.Validator) *CartHandler {
	return &CartHandler{service: service, validate: validate}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/:user_id", h.HandleGetUserCart)
	cartRoutes.Post("/product/:user_id", h.HandleAddProductToCart)
	cartRoutes.Get("/total/:user_id", h.HandleGetTotalPrice)
}

// userIDParam parses the numeric user id path parameter. Carts store the
// user id as a string, matching the other services.
func userIDParam(c *fiber.Ctx) (string, error) {
	id, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// HandleGetUserCart returns the cart of one user.
func (h *CartHandler) HandleGetUserCart(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	cart, err := h.service.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch cart"})
	}
	return c.JSON(cart)
}

// HandleAddProductToCart appends a product to the user's cart, creating the
// cart on first addition.
func (h *CartHandler) HandleAddProductToCart(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var product models.CartProduct
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if problems := h.validate.Check(product); problems != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": problems,
		})
	}

	cart, err := h.service.AddProduct(userID, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add product to cart"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully",
		"cart_id": cart.ID,
	})
}

// HandleGetTotalPrice sums the prices of everything in the user's cart.
func (h *CartHandler) HandleGetTotalPrice(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	total, err := h.service.TotalPrice(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to calculate total price"})
	}
	return c.JSON(fiber.Map{"total_price": total})
}
