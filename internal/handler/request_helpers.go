package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// MaxRequestBodyBytes caps JSON request bodies
const MaxRequestBodyBytes = 1 << 20

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// An empty body is allowed when allowEmpty is set, leaving req at its zero value.
//
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		log.Warn(fmt.Sprintf(LogFmtDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogFmtRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetIDParam parses a positive integer URL parameter. If ok is false the
// response has already been written.
func GetIDParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidIDParam, "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return 0, false
	}
	return id, true
}
