package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// ArticleService lo implementa *usecase.ArticleUseCase.
type ArticleService interface {
	Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error)
	List(ctx context.Context, q string, includeInactive bool, limit, offset int) (*dto.ArticleListResponse, error)
	Delete(ctx context.Context, id string) error
}

// ArticleHandler CRUD de artículos.
type ArticleHandler struct {
	svc ArticleService
}

func NewArticleHandler(svc ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        q                 query  string  false  "Búsqueda por código o nombre"
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Param        limit             query  int     false  "Límite"  default(20)
// @Param        offset            query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.svc.List(c.UserContext(), c.Query("q"), c.QueryBool("include_inactive", false), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateArticleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar artículo
// @Tags         articles
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ThirdPartyService lo implementa *usecase.ThirdPartyUseCase.
type ThirdPartyService interface {
	Create(ctx context.Context, in dto.CreateThirdPartyRequest) (*dto.ThirdPartyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ThirdPartyResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateThirdPartyRequest) (*dto.ThirdPartyResponse, error)
	List(ctx context.Context, relation string, includeInactive bool, limit, offset int) (*dto.ThirdPartyListResponse, error)
	Delete(ctx context.Context, id string) error
}

// ThirdPartyHandler clientes y proveedores.
type ThirdPartyHandler struct {
	svc ThirdPartyService
}

func NewThirdPartyHandler(svc ThirdPartyService) *ThirdPartyHandler {
	return &ThirdPartyHandler{svc: svc}
}

// Create godoc
// @Summary      Crear tercero (cliente, proveedor o ambos)
// @Tags         third-parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateThirdPartyRequest  true  "Datos del tercero"
// @Success      201   {object}  dto.ThirdPartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/third-parties [post]
func (h *ThirdPartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateThirdPartyRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tercero
// @Tags         third-parties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tercero"
// @Success      200  {object}  dto.ThirdPartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/third-parties/{id} [get]
func (h *ThirdPartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar terceros
// @Tags         third-parties
// @Security     Bearer
// @Produce      json
// @Param        relation          query  string  false  "CLIENT, SUPPLIER o BOTH"
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Param        limit             query  int     false  "Límite"  default(20)
// @Param        offset            query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ThirdPartyListResponse
// @Router       /api/third-parties [get]
func (h *ThirdPartyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.svc.List(c.UserContext(), c.Query("relation"), c.QueryBool("include_inactive", false), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tercero
// @Tags         third-parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tercero"
// @Param        body  body  dto.UpdateThirdPartyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ThirdPartyResponse
// @Router       /api/third-parties/{id} [put]
func (h *ThirdPartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThirdPartyRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar tercero
// @Tags         third-parties
// @Security     Bearer
// @Param        id   path  string  true  "ID del tercero"
// @Success      204
// @Router       /api/third-parties/{id} [delete]
func (h *ThirdPartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WarehouseService lo implementa *usecase.WarehouseUseCase.
type WarehouseService interface {
	Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error)
	List(ctx context.Context, limit, offset int) (*dto.WarehouseListResponse, error)
}

// WarehouseHandler bodegas.
type WarehouseHandler struct {
	svc WarehouseService
}

func NewWarehouseHandler(svc WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bodega"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WarehouseResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.svc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
