package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/master-racoon/hackathon-last-mile/internal/api/dto"
	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := domain.OrderStatus(q.Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown status "+strconv.Quote(string(status)))
		return
	}

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, r, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = v
	}

	limit := defaultPageLimit
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxPageLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = v
	}

	orders, err := h.Repo.ListOrders(r.Context(), status, offset, limit)
	if err != nil {
		writeRepoError(w, r, err, "orders not found")
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderFromDomain(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.OrderFromDomain(order))
}

func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := strings.TrimSpace(mux.Vars(r)["orderNumber"])
	if number == "" {
		writeError(w, r, http.StatusBadRequest, "order number is required")
		return
	}

	order, err := h.Repo.GetOrderByNumber(r.Context(), number)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.OrderFromDomain(order))
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.OrderNumber) == "" {
		writeError(w, r, http.StatusBadRequest, "order_number is required")
		return
	}
	if req.RequestedDeliveryDate.IsZero() {
		writeError(w, r, http.StatusBadRequest, "requested_delivery_date is required")
		return
	}
	if req.Status != "" && !domain.OrderStatus(req.Status).Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown status "+strconv.Quote(req.Status))
		return
	}

	order, err := h.Repo.CreateOrder(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.OrderFromDomain(order))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.OrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.RequestedDeliveryDate.IsZero() {
		writeError(w, r, http.StatusBadRequest, "requested_delivery_date is required")
		return
	}

	// Status changes go through the dedicated status endpoint so the
	// transition rules cannot be bypassed.
	current, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	if req.Status != "" && domain.OrderStatus(req.Status) != current.Status {
		writeError(w, r, http.StatusBadRequest, "status cannot be changed here, use the status endpoint")
		return
	}

	order := req.ToDomain()
	order.OrderID = id
	order.Status = current.Status

	updated, err := h.Repo.UpdateOrder(r.Context(), order)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.OrderFromDomain(updated))
}

// UpdateStatus applies a lifecycle transition. Transitions only move
// forward; cancellation is allowed from any non-terminal status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.OrderStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	next := domain.OrderStatus(req.Status)
	if !next.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown status "+strconv.Quote(req.Status))
		return
	}

	order, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}

	if !order.Status.CanTransitionTo(next) {
		writeError(w, r, http.StatusConflict,
			"cannot transition from "+string(order.Status)+" to "+string(next))
		return
	}

	if err := h.Repo.UpdateOrderStatus(r.Context(), id, next); err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}

	order.Status = next
	writeJSON(w, r, http.StatusOK, dto.OrderFromDomain(order))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.DeleteOrder(r.Context(), id); err != nil {
		writeRepoError(w, r, err, "order not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
