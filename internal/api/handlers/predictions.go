package handlers

import (
	"errors"
	"net/http"

	"github.com/master-racoon/hackathon-last-mile/internal/api/dto"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
	"github.com/master-racoon/hackathon-last-mile/internal/services"
)

type PredictionHandler struct {
	Engine      *services.PredictionEngine
	Orders      ports.OrderRepository
	Vehicles    ports.VehicleTypeRepository
	Predictions ports.PredictionRepository
}

// Run triggers a prediction pass over all open orders.
func (h *PredictionHandler) Run(w http.ResponseWriter, r *http.Request) {
	n, err := h.Engine.Run(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "prediction run failed")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.RunPredictionsResponse{Status: "ok", OrdersProcessed: n})
}

// Latest returns the most recent prediction for an order.
func (h *PredictionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Orders.GetOrder(r.Context(), id); err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}

	p, err := h.Predictions.GetLatestPrediction(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "no prediction for order")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PredictionFromDomain(p))
}

// History returns all predictions for an order, newest first.
func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Orders.GetOrder(r.Context(), id); err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}

	preds, err := h.Predictions.ListPredictions(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "no predictions for order")
		return
	}

	res := dto.ListPredictionsResponse{Predictions: make([]dto.PredictionResponse, 0, len(preds))}
	for _, p := range preds {
		res.Predictions = append(res.Predictions, dto.PredictionFromDomain(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Recommendation joins an order with its latest prediction and the
// recommended vehicle's catalog entry.
func (h *PredictionHandler) Recommendation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}

	p, err := h.Predictions.GetLatestPrediction(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "no prediction for order")
		return
	}

	res := dto.RecommendationResponse{
		Order:      dto.OrderFromDomain(order),
		Prediction: dto.PredictionFromDomain(p),
	}

	if p.RecommendedVehicleTypeID != nil {
		vt, err := h.Vehicles.GetVehicleType(r.Context(), *p.RecommendedVehicleTypeID)
		switch {
		case err == nil:
			v := dto.VehicleTypeFromDomain(vt)
			res.RecommendedVehicle = &v
		case errors.Is(err, ports.ErrNotFound):
			// The catalog entry was removed after the run; the id in the
			// prediction row is still returned.
		default:
			writeRepoError(w, r, err, "vehicle type not found")
			return
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
