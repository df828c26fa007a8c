package http

import (
	"net/http"
	"time"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
)

// healthHandler reports liveness along with when the server was built
func healthHandler(startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, &model.HealthStatus{
			Status:    model.HealthStatusHealthy,
			Service:   types.ServiceName,
			Version:   types.Version,
			StartedAt: startedAt,
		})
	}
}
