package controllers

import (
	"net/http"

	"github.com/Priyanshpaila/Recruitment-backend/api/responses"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
)

// Health reports process liveness plus the state of the datastores. The
// endpoint stays 200 while Redis is down because the limiter fails open;
// a dead database makes the service unusable and returns 503.
func Health(cfg *config.Config, dbc db.Pinger, rds db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		report := map[string]string{"status": "ok", "env": cfg.App.Env}

		if dbc != nil {
			if err := dbc.Ping(r.Context()); err != nil {
				report["status"] = "degraded"
				report["db"] = "down"
				status = http.StatusServiceUnavailable
			} else {
				report["db"] = "up"
			}
		}
		if rds != nil {
			if err := rds.Ping(r.Context()); err != nil {
				report["redis"] = "down"
			} else {
				report["redis"] = "up"
			}
		}

		responses.WriteSuccessStatus(w, status, report)
	}
}
