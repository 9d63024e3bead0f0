package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/master-racoon/hackathon-last-mile/internal/api/handlers"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
	"github.com/master-racoon/hackathon-last-mile/internal/services"
)

// Deps bundles everything the HTTP surface needs. Handlers stay unaware
// of concrete adapters; this is the API composition root.
type Deps struct {
	Orders      ports.OrderRepository
	Vehicles    ports.VehicleTypeRepository
	Tracks      ports.TrackRepository
	Predictions ports.PredictionRepository
	Engine      *services.PredictionEngine
	Registry    *prometheus.Registry
	Log         zerolog.Logger
}

func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()

	orderHandler := &handlers.OrderHandler{Repo: d.Orders}
	vehicleHandler := &handlers.VehicleTypeHandler{Repo: d.Vehicles}
	trackHandler := &handlers.TrackHandler{Repo: d.Tracks}
	predictionHandler := &handlers.PredictionHandler{
		Engine:      d.Engine,
		Orders:      d.Orders,
		Vehicles:    d.Vehicles,
		Predictions: d.Predictions,
	}
	emissionsHandler := &handlers.EmissionsHandler{Vehicles: d.Vehicles}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/orders", orderHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders/by-number/{orderNumber}", orderHandler.GetByNumber).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/orders/{id:[0-9]+}/status", orderHandler.UpdateStatus).Methods(http.MethodPost)

	r.HandleFunc("/vehicle-types", vehicleHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/vehicle-types", vehicleHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/vehicle-types/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/vehicle-types/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/vehicle-types/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/tracks", trackHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/tracks", trackHandler.Create).Methods(http.MethodPost)

	r.HandleFunc("/predictions/run", predictionHandler.Run).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/prediction", predictionHandler.Latest).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/predictions", predictionHandler.History).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/recommendation", predictionHandler.Recommendation).Methods(http.MethodGet)

	r.HandleFunc("/emissions/estimate", emissionsHandler.Estimate).Methods(http.MethodPost)

	r.Use(loggingMiddleware(d.Log))
	return r
}
