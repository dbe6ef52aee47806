package controllers

import (
	"calmora-service/internal/pkg/constvars"
	"net/http"

	"github.com/goccy/go-json"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
