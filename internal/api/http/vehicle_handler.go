package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

type VehicleHandler struct {
	catalogSvc service.CatalogService
}

func NewVehicleHandler(catalogSvc service.CatalogService) *VehicleHandler {
	return &VehicleHandler{catalogSvc: catalogSvc}
}

type addVehicleRequest struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	PricePerDay string `json:"price_per_day"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
	Subtype     string `json:"subtype"`
}

type addQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *VehicleHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req addVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	price, err := decimal.NewFromString(req.PricePerDay)
	if err != nil {
		respondError(w, domain.NewValidationError("invalid price_per_day: %s", req.PricePerDay))
		return
	}

	vehicle, err := h.catalogSvc.AddVehicle(r.Context(), actorEmail, service.AddVehicleParams{
		ID:          req.ID,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: price,
		Quantity:    req.Quantity,
		Category:    domain.VehicleCategory(req.Category),
		Subtype:     req.Subtype,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapVehicle(vehicle))
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	vehicle, err := h.catalogSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapVehicle(vehicle))
}

// ListVehicles returns the whole catalog sorted by daily price. Unavailable
// entries are included so customers can see what exists.
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.catalogSvc.ListVehicles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]vehicleResponse, len(vehicles))
	for i := range vehicles {
		out[i] = mapVehicle(&vehicles[i])
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *VehicleHandler) AddQuantity(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req addQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.catalogSvc.AddQuantity(r.Context(), actorEmail, id, req.Delta); err != nil {
		respondError(w, err)
		return
	}

	vehicle, err := h.catalogSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapVehicle(vehicle))
}
