package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Registro directo (sin subrouter): otros módulos también cuelgan
	// rutas bajo /owners/{ownerID}.
	r.Post("/owners", createOwnerHandler(svc))
	r.Get("/owners/{ownerID}", getOwnerHandler(svc))
	r.Patch("/owners/{ownerID}", updateOwnerHandler(svc))
}

type createOwnerRequest struct {
	Name                 string         `json:"name"`
	AvailableTimeMinutes int            `json:"available_time_minutes"`
	Preferences          map[string]any `json:"preferences"`
}

type updateOwnerRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	AvailableTimeMinutes *int           `json:"available_time_minutes"`
	Preferences          map[string]any `json:"preferences"`
}

type ownerResponse struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	AvailableTimeMinutes int            `json:"available_time_minutes"`
	Preferences          map[string]any `json:"preferences"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:                 req.Name,
			AvailableTimeMinutes: req.AvailableTimeMinutes,
			Preferences:          req.Preferences,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), UpdateInput{
			AvailableTimeMinutes: req.AvailableTimeMinutes,
			Preferences:          req.Preferences,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "owner not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:                   o.ID,
		Name:                 o.Name,
		AvailableTimeMinutes: o.AvailableTimeMinutes,
		Preferences:          o.Preferences,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
