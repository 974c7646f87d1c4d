package reports

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scamlens/api/internal/config"
	"github.com/scamlens/api/internal/metrics"
	"github.com/scamlens/api/internal/pkg/pagination"
	"github.com/scamlens/api/internal/pkg/response"
	"github.com/scamlens/api/internal/pkg/sanitize"
	errs "github.com/scamlens/api/pkg/errors"
)

const defaultLeaderboardLimit = 10

// Handler handles report HTTP requests
type Handler struct {
	repo   *Repository
	config *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo:   repo,
		config: cfg,
	}
}

func (h *Handler) detail(err error) []string {
	if h.config.IsDevelopment() && err != nil {
		return []string{err.Error()}
	}
	return nil
}

// Create godoc
// @Summary Submit a report
// @Description Records one reporter's threat report for a contract; a second report for the same pair is rejected
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} response.Envelope{data=Report}
// @Failure 400 {object} response.Envelope
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}

	req.ContractAddress = sanitize.Text(req.ContractAddress)
	req.Reporter = sanitize.Text(req.Reporter)
	req.Threats = sanitize.Tags(req.Threats)

	if err := ValidateCreateRequest(&req); err != nil {
		response.BadRequest(c, "Error saving report", err.Error())
		return
	}

	report := &Report{
		ContractAddress: req.ContractAddress,
		Threats:         req.Threats,
		Reporter:        req.Reporter,
	}
	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		if errors.Is(err, errs.ErrDuplicateReport) {
			metrics.IncDuplicateReport()
			response.BadRequest(c, "You have already reported this contract")
			return
		}
		response.InternalServerError(c, "Error saving report", h.detail(err)...)
		return
	}

	metrics.IncReportSubmitted()
	response.Created(c, report)
}

// ListByContract godoc
// @Summary List reports for a contract
// @Tags reports
// @Produce json
// @Param contractAddress path string true "Contract address"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=[]Report}
// @Failure 500 {object} response.Envelope
// @Router /reports/contract/{contractAddress} [get]
func (h *Handler) ListByContract(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.repo.ListByContract(c.Request.Context(), c.Param("contractAddress"), params)
	if err != nil {
		response.InternalServerError(c, "Error fetching reports", h.detail(err)...)
		return
	}
	if items == nil {
		items = []Report{}
	}

	response.Paginated(c, items, "totalReports", total, params.Page, pagination.TotalPages(total, params.Limit))
}

// ListByReporter godoc
// @Summary List reports by a reporter
// @Tags reports
// @Produce json
// @Param reporter path string true "Reporter address"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=[]Report}
// @Failure 500 {object} response.Envelope
// @Router /reports/reporter/{reporter} [get]
func (h *Handler) ListByReporter(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.repo.ListByReporter(c.Request.Context(), c.Param("reporter"), params)
	if err != nil {
		response.InternalServerError(c, "Error fetching reports", h.detail(err)...)
		return
	}
	if items == nil {
		items = []Report{}
	}

	response.Paginated(c, items, "totalReports", total, params.Page, pagination.TotalPages(total, params.Limit))
}

// ThreatStats godoc
// @Summary Threat distribution for a contract
// @Description One entry per distinct threat type reported against the contract
// @Tags reports
// @Produce json
// @Param contractAddress path string true "Contract address"
// @Success 200 {object} response.Envelope{data=[]ThreatStat}
// @Failure 500 {object} response.Envelope
// @Router /reports/contract/{contractAddress}/stats [get]
func (h *Handler) ThreatStats(c *gin.Context) {
	stats, err := h.repo.ThreatStats(c.Request.Context(), c.Param("contractAddress"))
	if err != nil {
		response.InternalServerError(c, "Error fetching threat statistics", h.detail(err)...)
		return
	}
	response.Success(c, stats)
}

// PopularThreats godoc
// @Summary Global threat-type leaderboard
// @Tags reports
// @Produce json
// @Success 200 {object} response.Envelope{data=[]ThreatStat}
// @Failure 500 {object} response.Envelope
// @Router /reports/stats/threats [get]
func (h *Handler) PopularThreats(c *gin.Context) {
	stats, err := h.repo.PopularThreats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Error fetching popular threat types", h.detail(err)...)
		return
	}
	response.Success(c, stats)
}

// MostReported godoc
// @Summary Most reported contracts
// @Tags reports
// @Produce json
// @Param limit query int false "Number of contracts (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=[]ReportedContract}
// @Failure 500 {object} response.Envelope
// @Router /reports/stats/contracts [get]
func (h *Handler) MostReported(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 1 {
		limit = defaultLeaderboardLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	contracts, err := h.repo.MostReported(c.Request.Context(), limit)
	if err != nil {
		response.InternalServerError(c, "Error fetching most reported contracts", h.detail(err)...)
		return
	}
	response.Success(c, contracts)
}
