package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"mortgage-registry/domain"
	"mortgage-registry/service"
)

type ClientHandler struct {
	registry *service.RegistryService
	log      *logrus.Logger
}

func NewClientHandler(registry *service.RegistryService, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{registry: registry, log: log}
}

type sortRequest struct {
	Direction string `json:"direction"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.MortgageInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	client, err := h.registry.Add(input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusCreated, client)
}

// List returns the snapshot rows in registry order.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, h.registry.Snapshot())
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	view, err := h.registry.Display(id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, view)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	var input domain.MortgageInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	client, err := h.registry.Update(id, input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	if err := h.registry.Remove(id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rows, err := h.registry.Sort(req.Direction)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, rows)
}

func (h *ClientHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	schedule, err := h.registry.Schedule(id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, schedule)
}
