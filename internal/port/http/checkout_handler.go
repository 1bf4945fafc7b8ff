package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
)

type CheckoutHandler struct {
	checkout Checkout
	metrics  *metrics.MetricsManager
	log      logger.Logger
}

// NewCheckoutHandler builds the handler. m may be nil.
func NewCheckoutHandler(checkout Checkout, m *metrics.MetricsManager, log logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, metrics: m, log: log}
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	var customer entity.CustomerDetails
	if err := decodeJSON(r, &customer); err != nil {
		writeError(w, h.log, err)
		return
	}

	confirmation, err := h.checkout.PlaceOrder(r.Context(), v.Cart, customer)
	if err != nil {
		h.count(entity.KindOf(err).String())
		writeError(w, h.log, err)
		return
	}
	h.count("ok")
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *CheckoutHandler) count(result string) {
	if h.metrics != nil {
		h.metrics.CheckoutsTotal.WithLabelValues(result).Inc()
	}
}
