package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"netbank/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses and the messages the UI
// shows. Anything unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.Is(err, models.ErrMissingFields):
		status, message = http.StatusBadRequest, "Missing fields"
	case errors.Is(err, models.ErrDuplicateName):
		status, message = http.StatusBadRequest, "Name already registered"
	case errors.Is(err, models.ErrInvalidAmount):
		status, message = http.StatusBadRequest, "Invalid amount or insufficient balance"
	case errors.Is(err, models.ErrInvalidMode):
		status, message = http.StatusBadRequest, "Invalid transfer mode"
	case errors.Is(err, models.ErrWrongPassword):
		status, message = http.StatusUnauthorized, "Wrong password"
	case errors.Is(err, models.ErrInvalidPIN):
		status, message = http.StatusUnauthorized, "Invalid PIN"
	case errors.Is(err, models.ErrNotFound):
		status, message = http.StatusNotFound, "Customer not found"
	case errors.Is(err, models.ErrBeneficiaryNotFound):
		status, message = http.StatusNotFound, "Beneficiary not found"
	case errors.Is(err, models.ErrPersistence):
		// In-memory state was not touched, but the operator needs to know
		// the data file is unwritable.
		log.Printf("persistence failure: %v", err)
		status, message = http.StatusInternalServerError, "Could not save changes"
	}
	writeJSON(w, status, map[string]string{"message": message})
}
