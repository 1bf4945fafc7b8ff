package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

const imageFormField = "image"

var errMissingImage = errors.New("multipart field \"image\" is required")

type AdminHandler struct {
	admin          Admin
	maxUploadBytes int64
	log            logger.Logger
}

func NewAdminHandler(admin Admin, maxUploadBytes int64, log logger.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, maxUploadBytes: maxUploadBytes, log: log}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	stats, err := h.admin.Dashboard(r.Context(), v.Session)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	orders, err := h.admin.RecentOrders(r.Context(), v.Session)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	order, err := h.admin.GetOrder(r.Context(), v.Session, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	products, err := h.admin.ListProducts(r.Context(), v.Session)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	var input entity.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.log, err)
		return
	}
	product, err := h.admin.CreateProduct(r.Context(), v.Session, input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var input entity.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.log, err)
		return
	}
	product, err := h.admin.UpdateProduct(r.Context(), v.Session, id, input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.admin.DeleteProduct(r.Context(), v.Session, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	if r.ContentLength > h.maxUploadBytes {
		h.tooLarge(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.tooLarge(w)
			return
		}
		writeError(w, h.log, entity.InvalidArgument("admin.upload_image", errMissingImage))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, h.log, entity.InvalidArgument("admin.upload_image", err))
		return
	}
	url, err := h.admin.UploadProductImage(r.Context(), v.Session, header.Filename, data)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

func (h *AdminHandler) tooLarge(w http.ResponseWriter) {
	writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
		Error: fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes),
		Kind:  entity.KindInvalidArgument.String(),
	})
}
