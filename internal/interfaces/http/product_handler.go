package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/pkg/pubsub"
	"github.com/valyala/fasthttp"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	broker *pubsub.Broker
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, broker *pubsub.Broker) *ProductHandler {
	return &ProductHandler{uc: uc, broker: broker}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todos los productos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search busca productos por texto libre sobre el nombre (?q=).
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: ok})
}

// sseKeepAlive intervalo del comentario de keep-alive. El Flush periódico
// detecta al cliente desconectado aunque no haya eventos, así el suscriptor
// muerto no queda colgado del broker esperando la próxima publicación.
const sseKeepAlive = 15 * time.Second

// Events transmite productos recién creados por SSE (productCreated).
// Entrega best-effort: el suscriptor que se conecta tarde no recibe backlog
// y un consumidor lento pierde eventos.
func (h *ProductHandler) Events(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ch, cancel := h.broker.Subscribe()
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		streamEvents(w, ch, sseKeepAlive)
	}))
	return nil
}

// streamEvents escribe los eventos del canal en formato SSE hasta que el
// canal se cierra o una escritura falla (cliente desconectado).
func streamEvents(w *bufio.Writer, ch <-chan any, keepAlive time.Duration) {
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: productCreated\ndata: %s\n\n", payload)
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
		}
		if err := w.Flush(); err != nil {
			return
		}
	}
}
