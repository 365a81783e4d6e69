package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/3EEEs/Project-Solar/pkg/validation"
	"github.com/3EEEs/Project-Solar/pkg/viability"
	"github.com/google/uuid"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head><title>Solar Viability Calculator</title></head>
<body style="font-family:system-ui;max-width:40rem;margin:2rem auto">
<h1>Solar Viability Calculator</h1>
<form method="POST" action="/assess">
<p><label>Location:
<select name="location">
<option value="{{.Placeholder}}">{{.Placeholder}}</option>
{{- range .Locations}}
<option value="{{.}}"{{if eq . $.Form.Location}} selected{{end}}>{{.}}</option>
{{- end}}
</select></label></p>
<p><label>Energy Cost (cents/kWh): <input type="number" step="0.01" name="energyCost" value="{{.Form.EnergyCost}}"></label></p>
<p><label>Real Estate Area (ft²): <input type="number" name="realEstateArea" value="{{.Form.Area}}"></label></p>
<p><label>Household Size: <input type="number" name="householdSize" value="{{.Form.HouseholdSize}}"></label></p>
<p><label>Panel Type:
<select name="panelType">
<option value="{{.Placeholder}}">{{.Placeholder}}</option>
{{- range .Panels}}
<option value="{{.}}"{{if eq (print .) $.Form.PanelType}} selected{{end}}>{{.}}</option>
{{- end}}
</select></label></p>
<button type="submit">Calculate</button>
</form>
{{- with .Errors}}
<div><h2>Please fix:</h2><ul>{{range .}}<li>{{.Message}}</li>{{end}}</ul></div>
{{- end}}
{{- with .Result}}
<div>
<h2>Results:</h2>
<p><strong>Location:</strong> {{.Location}}</p>
<p><strong>Energy Output:</strong> {{.EnergyOutput}}</p>
<p><strong>Yearly Savings:</strong> {{.YearlySavings}}</p>
<p><strong>Initial Cost:</strong> {{.InitialCost}}</p>
<p><strong>Payback Period:</strong> {{.PaybackPeriod}}</p>
<p><strong>Viability:</strong> {{.Viability}}</p>
</div>
{{- end}}
</body></html>`))

// formValues echoes the submitted strings back into the form.
type formValues struct {
	Location      string
	EnergyCost    string
	Area          string
	HouseholdSize string
	PanelType     string
}

type page struct {
	Placeholder string
	Locations   []string
	Panels      []panel.Type
	Form        formValues
	Errors      []validation.Result
	Result      *viability.Display
}

func newPage(form formValues) page {
	return page{
		Placeholder: string(panel.Unselected),
		Locations:   location.Names(),
		Panels:      panel.Types(),
		Form:        form,
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, p); err != nil {
		s.logger.Error("rendering page", "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, newPage(formValues{
		Location:  string(panel.Unselected),
		PanelType: string(panel.Unselected),
	}))
}

func (s *Server) handleFormAssess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := formValues{
		Location:      r.PostFormValue("location"),
		EnergyCost:    r.PostFormValue("energyCost"),
		Area:          r.PostFormValue("realEstateArea"),
		HouseholdSize: r.PostFormValue("householdSize"),
		PanelType:     r.PostFormValue("panelType"),
	}
	p := newPage(form)

	req, parseReport := parseForm(form)
	if !parseReport.Valid {
		p.Errors = parseReport.Errors
		s.renderPage(w, http.StatusUnprocessableEntity, p)
		return
	}

	status, resp := s.assess(uuid.NewString(), req)
	if resp.Validation != nil && !resp.Validation.Valid {
		p.Errors = resp.Validation.Errors
	} else if resp.Display != nil {
		p.Result = resp.Display
	} else if resp.Error != "" {
		p.Errors = []validation.Result{{Message: resp.Error}}
	}
	s.renderPage(w, status, p)
}

// parseForm converts the form strings into a request. Empty numeric fields
// are treated as zero, the way the form submits them.
func parseForm(form formValues) (investment.Request, *validation.Report) {
	report := validation.NewReport()
	req := investment.Request{
		Location:  form.Location,
		PanelType: form.PanelType,
	}

	parseFloat := func(field, raw string) float64 {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			report.AddError(validation.Result{
				Level:       validation.LevelInput,
				Message:     fmt.Sprintf("%s must be a number", field),
				Field:       field,
				ActualValue: raw,
			})
		}
		return v
	}
	req.EnergyCostCents = parseFloat("energy_cost_cents_per_kwh", form.EnergyCost)
	req.AreaSqFt = parseFloat("area_sq_ft", form.Area)

	if raw := strings.TrimSpace(form.HouseholdSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			report.AddError(validation.Result{
				Level:       validation.LevelInput,
				Message:     "household_size must be a whole number",
				Field:       "household_size",
				ActualValue: raw,
			})
		}
		req.HouseholdSize = n
	}

	return req, report
}
