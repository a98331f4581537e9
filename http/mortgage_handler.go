package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"mortgage-registry/domain"
	"mortgage-registry/service"
)

type MortgageHandler struct {
	service *service.MortgageService
	log     *logrus.Logger
}

func NewMortgageHandler(service *service.MortgageService, log *logrus.Logger) *MortgageHandler {
	return &MortgageHandler{service: service, log: log}
}

// Calculate computes a mortgage without registering a client.
func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.MortgageInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
