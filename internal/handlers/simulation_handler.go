package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentorbuy/internal/middleware"
	"rentorbuy/internal/models"
	"rentorbuy/internal/services"
	"rentorbuy/internal/simulation"
)

// SimulationHandler handles rent-vs-buy simulation requests.
type SimulationHandler struct {
	simulationService services.SimulationServicer
	auditService      services.AuditServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer, auditService services.AuditServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService, auditService: auditService}
}

// SimulateRequest represents the request payload for a simulation.
// Optional fields fall back to the documented defaults when omitted.
type SimulateRequest struct {
	YearsToSimulate *int `json:"years_to_simulate" binding:"required" example:"30"`

	MonthlyRent               *float64 `json:"monthly_rent" binding:"required" example:"2000"`
	AnnualRentIncreasePercent *float64 `json:"annual_rent_increase_percent" binding:"required" example:"3"`
	RentInsuranceMonthly      *float64 `json:"rent_insurance_monthly" example:"20"`

	HomePrice                   *float64 `json:"home_price" binding:"required" example:"500000"`
	DownPaymentPercent          *float64 `json:"down_payment_percent" binding:"required" example:"20"`
	MortgageInterestRatePercent *float64 `json:"mortgage_interest_rate_percent" binding:"required" example:"6.5"`
	LoanTermYears               *int     `json:"loan_term_years" example:"30"`
	PropertyTaxRatePercent      *float64 `json:"property_tax_rate_percent" binding:"required" example:"1.2"`
	MaintenanceCostPercent      *float64 `json:"maintenance_cost_percent" binding:"required" example:"1"`
	HomeAppreciationRatePercent *float64 `json:"home_appreciation_rate_percent" binding:"required" example:"3.5"`
	BuyingClosingCostsPercent   *float64 `json:"buying_closing_costs_percent" example:"2"`
	SellingClosingCostsPercent  *float64 `json:"selling_closing_costs_percent" example:"6"`
}

// ToInput converts the request into engine input, applying defaults.
// Required fields must have been checked by binding.
func (r SimulateRequest) ToInput() simulation.Input {
	return simulation.Input{
		YearsToSimulate:             *r.YearsToSimulate,
		MonthlyRent:                 *r.MonthlyRent,
		AnnualRentIncreasePercent:   *r.AnnualRentIncreasePercent,
		RentInsuranceMonthly:        floatOr(r.RentInsuranceMonthly, 0),
		HomePrice:                   *r.HomePrice,
		DownPaymentPercent:          *r.DownPaymentPercent,
		MortgageInterestRatePercent: *r.MortgageInterestRatePercent,
		LoanTermYears:               intOr(r.LoanTermYears, simulation.DefaultLoanTermYears),
		PropertyTaxRatePercent:      *r.PropertyTaxRatePercent,
		MaintenanceCostPercent:      *r.MaintenanceCostPercent,
		HomeAppreciationRatePercent: *r.HomeAppreciationRatePercent,
		BuyingClosingCostsPercent:   floatOr(r.BuyingClosingCostsPercent, simulation.DefaultBuyingClosingCostsPercent),
		SellingClosingCostsPercent:  floatOr(r.SellingClosingCostsPercent, simulation.DefaultSellingClosingCostsPercent),
	}
}

// ScheduleRequest represents the request payload for an amortization schedule.
type ScheduleRequest struct {
	HomePrice                   *float64 `json:"home_price" binding:"required" example:"500000"`
	DownPaymentPercent          *float64 `json:"down_payment_percent" binding:"required" example:"20"`
	MortgageInterestRatePercent *float64 `json:"mortgage_interest_rate_percent" binding:"required" example:"6.5"`
	LoanTermYears               *int     `json:"loan_term_years" example:"30"`
}

// ToLoanInput converts the request into engine input, applying defaults.
func (r ScheduleRequest) ToLoanInput() simulation.LoanInput {
	return simulation.LoanInput{
		HomePrice:                   *r.HomePrice,
		DownPaymentPercent:          *r.DownPaymentPercent,
		MortgageInterestRatePercent: *r.MortgageInterestRatePercent,
		LoanTermYears:               intOr(r.LoanTermYears, simulation.DefaultLoanTermYears),
	}
}

// ScheduleResponse is an amortization schedule at monthly or yearly granularity.
type ScheduleResponse struct {
	LoanPrincipal  float64                        `json:"loan_principal"`
	MonthlyPayment float64                        `json:"monthly_payment"`
	TotalInterest  float64                        `json:"total_interest"`
	Granularity    string                         `json:"granularity"`
	Months         []simulation.AmortizationEntry `json:"months,omitempty"`
	Years          []simulation.AmortizationYear  `json:"years,omitempty"`
}

// Simulate runs a rent-vs-buy projection.
// @Summary     Run a simulation
// @Description Project renting against buying year by year and recommend the cheaper path
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Param       request body SimulateRequest true "Scenario parameters"
// @Success     200 {object} simulation.Output "Simulation result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulate [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	start := time.Now()

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := bindingError(err)
		h.audit(c, models.AuditActionSimulate, 0, start, appErr)
		respondWithError(c, appErr)
		return
	}

	input := req.ToInput()
	out, err := h.simulationService.Simulate(c.Request.Context(), input)
	h.audit(c, models.AuditActionSimulate, input.YearsToSimulate, start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// Schedule returns the amortization schedule of a mortgage.
// @Summary     Amortization schedule
// @Description Monthly (default) or yearly amortization of a fixed-rate mortgage
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Param       granularity query string false "monthly or yearly"
// @Param       request body ScheduleRequest true "Loan parameters"
// @Success     200 {object} ScheduleResponse "Amortization schedule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schedule [post]
func (h *SimulationHandler) Schedule(c *gin.Context) {
	start := time.Now()

	granularity := c.DefaultQuery("granularity", "monthly")
	if granularity != "monthly" && granularity != "yearly" {
		err := invalidFields([]simulation.FieldError{{Field: "granularity", Reason: "must be monthly or yearly"}}, nil)
		h.audit(c, models.AuditActionSchedule, 0, start, err)
		respondWithError(c, err)
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := bindingError(err)
		h.audit(c, models.AuditActionSchedule, 0, start, appErr)
		respondWithError(c, appErr)
		return
	}

	loan := req.ToLoanInput()
	schedule, err := h.simulationService.Schedule(c.Request.Context(), loan)
	h.audit(c, models.AuditActionSchedule, loan.LoanTermYears, start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := ScheduleResponse{
		LoanPrincipal:  schedule.LoanPrincipal,
		MonthlyPayment: schedule.MonthlyPayment,
		TotalInterest:  schedule.TotalInterest(),
		Granularity:    granularity,
	}
	if granularity == "yearly" {
		resp.Years = schedule.Years()
	} else {
		resp.Months = schedule.Entries
	}
	c.JSON(http.StatusOK, resp)
}

// Defaults returns the default scenario.
// @Summary     Default scenario
// @Description The scenario a new client starts from
// @Tags        simulation
// @Produce     json
// @Success     200 {object} simulation.Input "Default input"
// @Router      /defaults [get]
func (h *SimulationHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, simulation.DefaultInput())
}

func (h *SimulationHandler) audit(c *gin.Context, action models.AuditAction, horizon int, start time.Time, err error) {
	h.auditService.Log(services.AuditEntry{
		RequestID:  middleware.GetRequestID(c),
		Action:     action,
		ClientIP:   c.ClientIP(),
		StatusCode: errorStatus(err),
		ErrorCode:  errorCode(err),
		Horizon:    horizon,
		LatencyMS:  time.Since(start).Milliseconds(),
	})
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
