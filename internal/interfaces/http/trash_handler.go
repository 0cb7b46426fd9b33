package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/trash"
	"github.com/jhoicas/Libreta-api/internal/domain"
)

// TrashHandler maneja el ciclo de papelera: eliminar, restaurar y listar (protegido).
type TrashHandler struct {
	uc *trash.TrashUseCase
}

// NewTrashHandler construye el handler.
func NewTrashHandler(uc *trash.TrashUseCase) *TrashHandler {
	return &TrashHandler{uc: uc}
}

// Delete godoc
// @Summary      Eliminar (suave) un registro por tipo e ID
// @Tags         trash
// @Security     Bearer
// @Produce      json
// @Param        itemType  path  string  true  "order | product | sale | payment"
// @Param        id        path  int     true  "ID del registro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trash/{itemType}/{id} [delete]
func (h *TrashHandler) Delete(c *fiber.Ctx) error {
	itemType := trash.ItemType(c.Params("itemType"))
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(GetUserID(c), itemType, int64(id)); err != nil {
		return trashError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar un registro eliminado por tipo e ID
// @Tags         trash
// @Security     Bearer
// @Produce      json
// @Param        itemType  path  string  true  "order | product | sale | payment"
// @Param        id        path  int     true  "ID del registro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trash/{itemType}/{id}/restore [post]
func (h *TrashHandler) Restore(c *fiber.Ctx) error {
	itemType := trash.ItemType(c.Params("itemType"))
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Restore(GetUserID(c), itemType, int64(id)); err != nil {
		return trashError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar la papelera (eliminados en los últimos 3 días)
// @Tags         trash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrashBinDTO
// @Router       /api/trash [get]
func (h *TrashHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetTrashBin(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func trashError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo inválido: order, product, sale o payment"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
