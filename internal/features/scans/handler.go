package scans

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/scamlens/api/internal/config"
	"github.com/scamlens/api/internal/metrics"
	"github.com/scamlens/api/internal/pkg/pagination"
	"github.com/scamlens/api/internal/pkg/response"
	"github.com/scamlens/api/internal/pkg/sanitize"
	errs "github.com/scamlens/api/pkg/errors"
)

// Handler handles scan HTTP requests
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
// @Summary Record a scan result
// @Tags scans
// @Accept json
// @Produce json
// @Param request body CreateScanRequest true "Scan result"
// @Success 201 {object} response.Envelope{data=Scan}
// @Failure 400 {object} response.Envelope
// @Router /scans [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}

	req.ContractAddress = sanitize.Text(req.ContractAddress)
	req.ScannedBy = sanitize.Text(req.ScannedBy)

	if err := ValidateCreateRequest(&req); err != nil {
		response.BadRequest(c, "Error saving scan result", err.Error())
		return
	}

	scan := &Scan{
		ContractAddress: req.ContractAddress,
		IsContract:      *req.IsContract,
		IsVerified:      *req.IsVerified,
		IsScam:          *req.IsScam,
		ScannedBy:       req.ScannedBy,
	}
	if req.ContractDetails != nil {
		scan.ContractDetails = *req.ContractDetails
	}

	if err := h.repo.Create(c.Request.Context(), scan); err != nil {
		response.InternalServerError(c, "Error saving scan result", h.detail(err)...)
		return
	}

	metrics.IncScanRecorded()
	response.Created(c, scan)
}

// Latest godoc
// @Summary Latest scan for a contract
// @Tags scans
// @Produce json
// @Param contractAddress path string true "Contract address"
// @Success 200 {object} response.Envelope{data=Scan}
// @Failure 404 {object} response.Envelope
// @Router /scans/{contractAddress}/latest [get]
func (h *Handler) Latest(c *gin.Context) {
	scan, err := h.repo.Latest(c.Request.Context(), c.Param("contractAddress"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "No scan found for this contract")
			return
		}
		response.InternalServerError(c, "Error fetching scan result", h.detail(err)...)
		return
	}
	response.Success(c, scan)
}

// History godoc
// @Summary Scan history for a contract
// @Tags scans
// @Produce json
// @Param contractAddress path string true "Contract address"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=[]Scan}
// @Failure 500 {object} response.Envelope
// @Router /scans/{contractAddress}/history [get]
func (h *Handler) History(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.repo.History(c.Request.Context(), c.Param("contractAddress"), params)
	if err != nil {
		response.InternalServerError(c, "Error fetching scan history", h.detail(err)...)
		return
	}
	if items == nil {
		items = []Scan{}
	}

	response.Paginated(c, items, "totalScans", total, params.Page, pagination.TotalPages(total, params.Limit))
}
