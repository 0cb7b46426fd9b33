package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/usecase"
)

// DataHandler arma la pantalla de gestión de datos: órdenes, productos y
// ventas activos del usuario en una sola respuesta (protegido).
type DataHandler struct {
	orderUC   *usecase.OrderUseCase
	productUC *usecase.ProductUseCase
	saleUC    *usecase.SaleUseCase
}

// NewDataHandler construye el handler.
func NewDataHandler(orderUC *usecase.OrderUseCase, productUC *usecase.ProductUseCase, saleUC *usecase.SaleUseCase) *DataHandler {
	return &DataHandler{orderUC: orderUC, productUC: productUC, saleUC: saleUC}
}

// List godoc
// @Summary      Listados activos para la gestión de datos
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataManagementDTO
// @Router       /api/data [get]
func (h *DataHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	orders, err := h.orderUC.ListOrders(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	products, err := h.productUC.ListProducts(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	sales, err := h.saleUC.ListSales(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.DataManagementDTO{
		Orders:   orders,
		Products: products,
		Sales:    sales,
	})
}
