package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"tripplanner/internal/budget"
	"tripplanner/internal/utils"

	"github.com/gin-gonic/gin"
)

// budgetDestination accepts either "Goa" or {"name"|"city", "country", "days"}.
type budgetDestination budget.Destination

func (d *budgetDestination) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*d = budgetDestination{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*d = budgetDestination{Name: strings.TrimSpace(name)}
		return nil
	}

	var obj struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		Country string `json:"country"`
		Days    int    `json:"days"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("destination must be a string or an object: %w", err)
	}
	name := strings.TrimSpace(obj.Name)
	if name == "" {
		name = strings.TrimSpace(obj.City)
	}
	*d = budgetDestination{Name: name, Country: strings.TrimSpace(obj.Country), Days: obj.Days}
	return nil
}

type categorizedRequest struct {
	Destinations []budgetDestination `json:"destinations"`
	DurationDays int                 `json:"duration_days"`
	ComfortLevel string              `json:"comfort_level"`
}

func (r categorizedRequest) toRequest() budget.Request {
	out := budget.Request{DurationDays: r.DurationDays, ComfortLevel: r.ComfortLevel}
	for _, d := range r.Destinations {
		out.Destinations = append(out.Destinations, budget.Destination(d))
	}
	return out
}

// GET /api/budget/estimate?days=3&destinations=Goa,Mumbai
// destinations may also be repeated.
func EstimateBudget(c *gin.Context) {
	names := utils.SplitList(strings.Join(c.QueryArray("destinations"), ","))
	est, err := budgetService(c).Simple(c.Request.Context(), names, queryInt(c, "days", 0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// POST /api/budget/estimate
func EstimateBudgetCategorized(c *gin.Context) {
	var in categorizedRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	est, err := budgetService(c).Categorized(c.Request.Context(), in.toRequest())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// GET /api/trips/:id/budget
func GetTripBudget(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rep, err := budgetService(c).TripReport(c.Request.Context(), currentUser(c), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/trips/:id/budget/report.pdf
func GetTripBudgetPDF(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := budgetService(c).ReportPDF(c.Request.Context(), currentUser(c), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
