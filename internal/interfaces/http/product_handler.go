package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/application/usecase"
	"github.com/jhoicas/techstore-api/internal/infrastructure/excel"
)

// ProductHandler maneja las peticiones HTTP para Product.
// Las lecturas son públicas; crear, actualizar, borrar e importar son de ADMIN.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	importUC *usecase.ImportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, importUC *usecase.ImportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, importUC: importUC}
}

// parseID interpreta el path param :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, writeError(c, fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}

// List lista productos paginados.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return writeError(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return c.JSON(out)
}

// Search busca por substring del nombre. El parámetro query es obligatorio.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return writeError(c, fiber.StatusBadRequest, "el parámetro query es requerido")
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.SearchByName(c.UserContext(), query, page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Filter combina criterios opcionales (nombre, rango de precio, categoría).
func (h *ProductHandler) Filter(c *fiber.Ctx) error {
	var in dto.ProductFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "parámetros de filtro inválidos")
	}
	out, err := h.uc.Filter(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// LowStock lista productos con stock por debajo del límite. limit es obligatorio y >= 1.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 1 {
		return writeError(c, fiber.StatusBadRequest, "el parámetro limit es requerido y debe ser >= 1")
	}
	out, err := h.uc.LowStock(c.UserContext(), limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Expensive lista productos con precio mayor o igual a min.
func (h *ProductHandler) Expensive(c *fiber.Ctx) error {
	raw := c.Query("min")
	min, err := decimal.NewFromString(raw)
	if err != nil || !min.IsPositive() {
		return writeError(c, fiber.StatusBadRequest, "el parámetro min es requerido y debe ser positivo")
	}
	out, err := h.uc.ByMinPrice(c.UserContext(), min)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Quick busca el término en nombre o descripción.
func (h *ProductHandler) Quick(c *fiber.Ctx) error {
	term := c.Query("term")
	if term == "" {
		return writeError(c, fiber.StatusBadRequest, "el parámetro term es requerido")
	}
	out, err := h.uc.QuickSearch(c.UserContext(), term)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Create crea un producto (ADMIN).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if details := in.Validate(); len(details) > 0 {
		return writeError(c, fiber.StatusBadRequest, "validación fallida", details...)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un producto (ADMIN).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if details := in.Validate(); len(details) > 0 {
		return writeError(c, fiber.StatusBadRequest, "validación fallida", details...)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto (ADMIN).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReduceStock descuenta stock de un producto. quantity debe ser positivo.
func (h *ProductHandler) ReduceStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	quantity := c.QueryInt("quantity", 0)
	if quantity <= 0 {
		return writeError(c, fiber.StatusBadRequest, "el parámetro quantity es requerido y debe ser positivo")
	}
	out, err := h.uc.ReduceStock(c.UserContext(), id, quantity)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Upload importa productos desde un xlsx subido como multipart (ADMIN).
func (h *ProductHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "archivo requerido en el campo file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no se pudo leer el archivo")
	}
	defer file.Close()

	sheet, err := excel.Open(file)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "el archivo no es un xlsx válido")
	}
	defer sheet.Close()

	summary, err := h.importUC.Import(c.UserContext(), sheet)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(summary)
}
