package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

type fakeOrderRepo struct {
	ports.OrderRepository
	orders        map[int]*domain.Order
	statusUpdates []domain.OrderStatus
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, orderID int) (*domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) GetOrderByNumber(_ context.Context, number string) (*domain.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) ListOrders(_ context.Context, status domain.OrderStatus, _, _ int) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *domain.Order) (*domain.Order, error) {
	o.OrderID = len(f.orders) + 1
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	f.orders[o.OrderID] = o
	return o, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, orderID int, status domain.OrderStatus) error {
	if _, ok := f.orders[orderID]; !ok {
		return ports.ErrNotFound
	}
	f.statusUpdates = append(f.statusUpdates, status)
	f.orders[orderID].Status = status
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(_ context.Context, orderID int) error {
	if _, ok := f.orders[orderID]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, orderID)
	return nil
}

func storedOrder() *domain.Order {
	return &domain.Order{
		OrderID:               1,
		OrderNumber:           "ORD-1001",
		RequestedDeliveryDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:                domain.StatusPending,
	}
}

func newOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[int]*domain.Order{}}
	for _, o := range orders {
		repo.orders[o.OrderID] = o
	}
	return repo
}

func doStatusUpdate(t *testing.T, repo *fakeOrderRepo, orderID, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &OrderHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": orderID})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)
	return rec
}

func TestUpdateStatusForward(t *testing.T) {
	repo := newOrderRepo(storedOrder())

	rec := doStatusUpdate(t, repo, "1", `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if len(repo.statusUpdates) != 1 || repo.statusUpdates[0] != domain.StatusConfirmed {
		t.Fatalf("unexpected status updates: %v", repo.statusUpdates)
	}

	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res["status"] != "confirmed" {
		t.Fatalf("response status = %v, want confirmed", res["status"])
	}
}

func TestUpdateStatusBackwardRejected(t *testing.T) {
	o := storedOrder()
	o.Status = domain.StatusInTransit
	repo := newOrderRepo(o)

	rec := doStatusUpdate(t, repo, "1", `{"status":"pending"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409", rec.Code)
	}
	if len(repo.statusUpdates) != 0 {
		t.Fatalf("backward transition was persisted: %v", repo.statusUpdates)
	}
}

func TestUpdateStatusFromTerminalRejected(t *testing.T) {
	o := storedOrder()
	o.Status = domain.StatusDelivered
	repo := newOrderRepo(o)

	rec := doStatusUpdate(t, repo, "1", `{"status":"cancelled"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409", rec.Code)
	}
}

func TestUpdateStatusCancelFromOpen(t *testing.T) {
	o := storedOrder()
	o.Status = domain.StatusInTransit
	repo := newOrderRepo(o)

	rec := doStatusUpdate(t, repo, "1", `{"status":"cancelled"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	repo := newOrderRepo(storedOrder())

	rec := doStatusUpdate(t, repo, "1", `{"status":"teleported"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	repo := newOrderRepo()

	rec := doStatusUpdate(t, repo, "42", `{"status":"confirmed"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	h := &OrderHandler{Repo: newOrderRepo()}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing order number", `{"requested_delivery_date":"2026-01-31T00:00:00Z"}`, http.StatusBadRequest},
		{"missing delivery date", `{"order_number":"ORD-1"}`, http.StatusBadRequest},
		{"unknown field", `{"order_number":"ORD-1","requested_delivery_date":"2026-01-31T00:00:00Z","bogus":1}`, http.StatusBadRequest},
		{"valid", `{"order_number":"ORD-1","requested_delivery_date":"2026-01-31T00:00:00Z"}`, http.StatusCreated},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: got status %d, want %d (body %s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	repo := newOrderRepo()
	h := &OrderHandler{Repo: repo}

	body := `{"order_number":"ORD-1","requested_delivery_date":"2026-01-31T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res["status"] != "pending" {
		t.Fatalf("status = %v, want pending", res["status"])
	}
}

func TestGetOrderByNumber(t *testing.T) {
	repo := newOrderRepo(storedOrder())
	h := &OrderHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/orders/by-number/ORD-1001", nil)
	req = mux.SetURLVars(req, map[string]string{"orderNumber": "ORD-1001"})
	rec := httptest.NewRecorder()
	h.GetByNumber(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/orders/by-number/NOPE", nil)
	req = mux.SetURLVars(req, map[string]string{"orderNumber": "NOPE"})
	rec = httptest.NewRecorder()
	h.GetByNumber(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestListOrdersRejectsBadParams(t *testing.T) {
	h := &OrderHandler{Repo: newOrderRepo()}

	for _, target := range []string{
		"/orders?status=teleported",
		"/orders?offset=-1",
		"/orders?limit=0",
		"/orders?limit=9999",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: got status %d, want 400", target, rec.Code)
		}
	}
}

func TestDeleteOrder(t *testing.T) {
	repo := newOrderRepo(storedOrder())
	h := &OrderHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodDelete, "/orders/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", rec.Code)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("order was not deleted")
	}
}
