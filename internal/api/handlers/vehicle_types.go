package handlers

import (
	"net/http"
	"strings"

	"github.com/master-racoon/hackathon-last-mile/internal/api/dto"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

type VehicleTypeHandler struct {
	Repo ports.VehicleTypeRepository
}

func (h *VehicleTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	vts, err := h.Repo.ListVehicleTypes(r.Context(), activeOnly)
	if err != nil {
		writeRepoError(w, r, err, "vehicle types not found")
		return
	}

	res := dto.ListVehicleTypesResponse{VehicleTypes: make([]dto.VehicleTypeResponse, 0, len(vts))}
	for _, vt := range vts {
		res.VehicleTypes = append(res.VehicleTypes, dto.VehicleTypeFromDomain(vt))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	vt, err := h.Repo.GetVehicleType(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "vehicle type not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.VehicleTypeFromDomain(vt))
}

func (h *VehicleTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleTypeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	vt, err := h.Repo.CreateVehicleType(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, err, "vehicle type not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.VehicleTypeFromDomain(vt))
}

func (h *VehicleTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.VehicleTypeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	vt := req.ToDomain()
	vt.VehicleTypeID = id

	updated, err := h.Repo.UpdateVehicleType(r.Context(), vt)
	if err != nil {
		writeRepoError(w, r, err, "vehicle type not found")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.VehicleTypeFromDomain(updated))
}

func (h *VehicleTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.DeleteVehicleType(r.Context(), id); err != nil {
		writeRepoError(w, r, err, "vehicle type not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
