package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/3EEEs/Project-Solar/pkg/analytics"
	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/3EEEs/Project-Solar/pkg/validation"
	"github.com/3EEEs/Project-Solar/pkg/viability"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 16

// assessResponse is the body of POST /api/assess.
type assessResponse struct {
	RequestID  string             `json:"request_id"`
	Result     *viability.Result  `json:"result,omitempty"`
	Display    *viability.Display `json:"display,omitempty"`
	Validation *validation.Report `json:"validation,omitempty"`
	Error      string             `json:"error,omitempty"`
}

type compareResponse struct {
	RequestID  string                `json:"request_id"`
	Comparison *analytics.Comparison `json:"comparison,omitempty"`
	Validation *validation.Report    `json:"validation,omitempty"`
	Error      string                `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before the status line goes out, so an unencodable
// value becomes a 500 with an error body instead of a truncated response.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(v)
	if err != nil {
		buf.Reset()
		json.NewEncoder(&buf).Encode(errorResponse{Error: "encoding response: " + err.Error()})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
	return err
}

func newRequestID(w http.ResponseWriter) string {
	id := uuid.NewString()
	w.Header().Set("X-Request-ID", id)
	return id
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (investment.Request, error) {
	var req investment.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	return req, err
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, location.All())
}

func (s *Server) handlePanels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, panel.All())
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	id := newRequestID(w)

	req, err := decodeRequest(w, r)
	if err != nil {
		s.logger.Warn("bad assess body", "request_id", id, "error", err)
		writeJSON(w, http.StatusBadRequest, assessResponse{RequestID: id, Error: "invalid JSON body: " + err.Error()})
		return
	}

	status, resp := s.assess(id, req)
	if err := writeJSON(w, status, resp); err != nil {
		s.logger.Error("writing assess response", "request_id", id, "error", err)
	}
}

// assess validates and runs one request, shared by the JSON and form handlers.
func (s *Server) assess(id string, req investment.Request) (int, assessResponse) {
	resp := assessResponse{RequestID: id}

	report := validation.ValidateRequest(req)
	resp.Validation = report
	if !report.Valid {
		s.metrics.Assessment("invalid")
		s.logger.Info("assessment rejected", "request_id", id, "summary", report.Summary)
		resp.Error = report.Err().Error()
		return http.StatusUnprocessableEntity, resp
	}

	res, err := viability.Assess(req)
	if err != nil {
		var locErr *viability.LocationNotFoundError
		var panelErr *viability.PanelNotFoundError
		// Validation rejects unknown names with 422 first; these map to 404
		// only if the tables and the validator ever disagree.
		if errors.As(err, &locErr) || errors.As(err, &panelErr) {
			s.metrics.Assessment("not_found")
			resp.Error = err.Error()
			return http.StatusNotFound, resp
		}
		s.logger.Error("assessment failed", "request_id", id, "error", err)
		resp.Error = err.Error()
		return http.StatusInternalServerError, resp
	}

	outcome := "not_viable"
	if res.Viable {
		outcome = "viable"
	}
	s.metrics.Assessment(outcome)
	if res.Payback.Applicable {
		s.metrics.Payback(res.Payback.Years)
	}
	s.logger.Info("assessed",
		"request_id", id,
		"location", res.Location,
		"panel_type", res.PanelType,
		"payback", res.Payback.String(),
		"viable", res.Viable)

	display := res.Display()
	resp.Result = res
	resp.Display = &display
	return http.StatusOK, resp
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	id := newRequestID(w)

	req, err := decodeRequest(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, compareResponse{RequestID: id, Error: "invalid JSON body: " + err.Error()})
		return
	}

	report := validation.ValidateComparison(req)
	if !report.Valid {
		s.logger.Info("comparison rejected", "request_id", id, "summary", report.Summary)
		writeJSON(w, http.StatusUnprocessableEntity, compareResponse{
			RequestID:  id,
			Validation: report,
			Error:      report.Err().Error(),
		})
		return
	}

	c, err := analytics.Compare(req)
	if err != nil {
		var panelErr *viability.PanelNotFoundError
		if errors.As(err, &panelErr) {
			writeJSON(w, http.StatusUnprocessableEntity, compareResponse{RequestID: id, Error: err.Error()})
			return
		}
		s.logger.Error("comparison failed", "request_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, compareResponse{RequestID: id, Error: err.Error()})
		return
	}

	s.logger.Debug("compared", "request_id", id, "panel_type", c.PanelType, "viable", c.Summary.ViableCount)
	if err := writeJSON(w, http.StatusOK, compareResponse{RequestID: id, Comparison: c}); err != nil {
		s.logger.Error("writing compare response", "request_id", id, "error", err)
	}
}
