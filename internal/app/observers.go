package app

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

const (
	stateCart    = "cart"
	stateSession = "session"
)

func cartMetricsObserver(m *metrics.MetricsManager) service.CartObserver {
	return service.CartObserverFunc(func(_ context.Context, event service.CartEvent) {
		m.CartMutationsTotal.WithLabelValues(string(event.Type)).Inc()
		if event.PersistErr != nil {
			m.StorageFailuresTotal.WithLabelValues(stateCart).Inc()
		}
	})
}

func sessionMetricsObserver(m *metrics.MetricsManager) service.SessionObserver {
	return service.SessionObserverFunc(func(_ context.Context, event service.SessionEvent) {
		if event.PersistErr != nil {
			m.StorageFailuresTotal.WithLabelValues(stateSession).Inc()
		}
	})
}
