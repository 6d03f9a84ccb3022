package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/internal/validation"
)

// PaymentHandler handles HTTP requests for stored payment methods.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validation.Validator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService, validate *validation.Validator) *PaymentHandler {
	return &PaymentHandler{service: service, validate: validate}
}

// RegisterRoutes registers the payment routes.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/", h.HandleGetPayments)
	paymentRoutes.Get("/:id", h.HandleGetPaymentByID)
	paymentRoutes.Post("/", h.HandleCreatePayment)
	paymentRoutes.Put("/:id", h.HandleUpdatePayment)
	paymentRoutes.Delete("/:id", h.HandleDeletePayment)
}

// HandleGetPayments lists the payments of one user. The user_id query
// parameter is mandatory.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User id not provided"})
	}

	payments, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// HandleGetPaymentByID retrieves a single payment.
func (h *PaymentHandler) HandleGetPaymentByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	payment, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Payment with id %d not found", id)})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(payment)
}

// HandleCreatePayment registers a new payment method.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if problems := h.validate.Check(payment); problems != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": problems,
		})
	}

	paymentID, err := h.service.Create(&payment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot add the payment in the database"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Payment added successfully",
		"payment_id": paymentID,
	})
}

// HandleUpdatePayment merges a validated payload into an existing payment.
func (h *PaymentHandler) HandleUpdatePayment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if problems := h.validate.Check(payment); problems != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": problems,
		})
	}

	if err := h.service.Update(id, &payment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Payment with id %d not found", id)})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment updated successfully"})
}

// HandleDeletePayment deletes a payment.
func (h *PaymentHandler) HandleDeletePayment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Payment with id %d not found", id)})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
