package handlers

import (
	"net/http"
	"strings"

	"github.com/master-racoon/hackathon-last-mile/internal/api/dto"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

type TrackHandler struct {
	Repo ports.TrackRepository
}

func (h *TrackHandler) List(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Repo.ListTracks(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "tracks not found")
		return
	}

	res := dto.ListTracksResponse{Tracks: make([]dto.TrackResponse, 0, len(tracks))}
	for _, t := range tracks {
		res.Tracks = append(res.Tracks, dto.TrackFromDomain(t))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *TrackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.OriginCity) == "" || strings.TrimSpace(req.DestinationCity) == "" {
		writeError(w, r, http.StatusBadRequest, "origin_city and destination_city are required")
		return
	}

	track, err := h.Repo.CreateTrack(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, err, "track not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.TrackFromDomain(track))
}
