package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// HeaderStatePersisted is "false" when the response reflects state that
// could only be kept in memory.
const HeaderStatePersisted = "X-State-Persisted"

var errMissingPrice = errors.New("unitPrice is required")

type CartHandler struct {
	log logger.Logger
}

func NewCartHandler(log logger.Logger) *CartHandler {
	return &CartHandler{log: log}
}

type addItemRequest struct {
	Name      string           `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	ImageRef  string           `json:"imageRef"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK, v.Cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if req.UnitPrice == nil {
		writeError(w, h.log, entity.InvalidArgument("cart.add_item", errMissingPrice))
		return
	}
	if err := v.Cart.AddItem(r.Context(), req.Name, *req.UnitPrice, req.ImageRef); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.respond(w, http.StatusOK, v.Cart)
}

func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	index, err := lineIndex(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req changeQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := v.Cart.ChangeQuantity(r.Context(), index, req.Delta); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.respond(w, http.StatusOK, v.Cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	index, err := lineIndex(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := v.Cart.RemoveItem(r.Context(), index); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.respond(w, http.StatusOK, v.Cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	v.Cart.Clear(r.Context())
	h.respond(w, http.StatusOK, v.Cart)
}

func (h *CartHandler) respond(w http.ResponseWriter, status int, cart *service.CartManager) {
	if err := cart.LastPersistError(); err != nil {
		w.Header().Set(HeaderStatePersisted, "false")
	}
	writeJSON(w, status, cart.Summary())
}

func lineIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, entity.InvalidArgument("cart.index", entity.ErrInvalidIndex)
	}
	return index, nil
}
