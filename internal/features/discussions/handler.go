package discussions

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scamlens/api/internal/config"
	"github.com/scamlens/api/internal/metrics"
	"github.com/scamlens/api/internal/pkg/pagination"
	"github.com/scamlens/api/internal/pkg/response"
	"github.com/scamlens/api/internal/pkg/sanitize"
	errs "github.com/scamlens/api/pkg/errors"
)

// Handler handles discussion HTTP requests
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

// detail exposes the underlying error text only in development mode.
func (h *Handler) detail(err error) []string {
	if h.config.IsDevelopment() && err != nil {
		return []string{err.Error()}
	}
	return nil
}

// List godoc
// @Summary List discussions
// @Description Paginated discussions, newest first, optionally filtered by contract address
// @Tags discussions
// @Produce json
// @Param contractAddress query string false "Filter by contract address"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=[]Discussion}
// @Failure 500 {object} response.Envelope
// @Router /discussions [get]
func (h *Handler) List(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))
	contractAddress := c.Query("contractAddress")

	items, total, err := h.repo.List(c.Request.Context(), contractAddress, params)
	if err != nil {
		response.InternalServerError(c, "Error fetching discussions", h.detail(err)...)
		return
	}

	if items == nil {
		items = []Discussion{}
	}
	for i := range items {
		items[i].ComputeVoteCounts()
	}

	response.Paginated(c, items, "totalDiscussions", total, params.Page, pagination.TotalPages(total, params.Limit))
}

// Get godoc
// @Summary Get a discussion
// @Description Fetch one discussion by id; every call increments its view counter
// @Tags discussions
// @Produce json
// @Param id path string true "Discussion ID"
// @Success 200 {object} response.Envelope{data=Discussion}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /discussions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discussion ID format")
		return
	}

	d, err := h.repo.GetAndIncrementViews(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error fetching discussion", h.detail(err)...)
		return
	}

	metrics.IncDiscussionView()
	d.ComputeVoteCounts()
	response.Success(c, d)
}

// Create godoc
// @Summary Create a discussion
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body CreateDiscussionRequest true "Discussion"
// @Success 201 {object} response.Envelope{data=Discussion}
// @Failure 400 {object} response.Envelope
// @Router /discussions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}

	req.ContractAddress = sanitize.Text(req.ContractAddress)
	req.Title = sanitize.Text(req.Title)
	req.Content = sanitize.Text(req.Content)
	req.Author = sanitize.Text(req.Author)
	req.Tags = sanitize.Tags(req.Tags)

	if err := ValidateCreateRequest(&req); err != nil {
		response.BadRequest(c, "Error creating discussion", err.Error())
		return
	}

	d := &Discussion{
		ContractAddress: req.ContractAddress,
		Title:           req.Title,
		Content:         req.Content,
		Author:          req.Author,
		Tags:            req.Tags,
	}
	if err := h.repo.Create(c.Request.Context(), d); err != nil {
		response.InternalServerError(c, "Error creating discussion", h.detail(err)...)
		return
	}

	d.ComputeVoteCounts()
	response.Created(c, d)
}

// AddReply godoc
// @Summary Add a reply
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Param request body AddReplyRequest true "Reply"
// @Success 200 {object} response.Envelope{data=Discussion}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /discussions/{id}/replies [post]
func (h *Handler) AddReply(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discussion ID format")
		return
	}

	var req AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}

	req.Content = sanitize.Text(req.Content)
	req.Author = sanitize.Text(req.Author)

	if err := ValidateReplyRequest(&req); err != nil {
		response.BadRequest(c, "Error adding reply", err.Error())
		return
	}

	reply := Reply{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Author:    req.Author,
		Votes:     VoteSets{Upvotes: []string{}, Downvotes: []string{}},
		CreatedAt: time.Now(),
	}

	d, err := h.repo.AddReply(c.Request.Context(), id, reply)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error adding reply", h.detail(err)...)
		return
	}

	d.ComputeVoteCounts()
	response.Success(c, d)
}

// Vote godoc
// @Summary Vote on a discussion
// @Description Casts, switches or retracts the caller's vote. A voter is in at most one of the two sets.
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Param request body VoteRequest true "Vote"
// @Success 200 {object} response.Envelope{data=Discussion}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /discussions/{id}/vote [post]
func (h *Handler) Vote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discussion ID format")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}
	if err := ValidateVoteRequest(&req); err != nil {
		response.BadRequest(c, "Error voting on discussion", err.Error())
		return
	}

	d, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error voting on discussion", h.detail(err)...)
		return
	}

	d.Votes.Apply(req.WalletAddress, VoteType(req.VoteType))

	updated, err := h.repo.SaveVotes(c.Request.Context(), id, d.Votes)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error voting on discussion", h.detail(err)...)
		return
	}

	metrics.IncVoteCast("discussion")
	updated.ComputeVoteCounts()
	response.Success(c, updated)
}

// VoteOnReply godoc
// @Summary Vote on a reply
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Param replyId path string true "Reply ID"
// @Param request body VoteRequest true "Vote"
// @Success 200 {object} response.Envelope{data=Discussion}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /discussions/{id}/replies/{replyId}/vote [post]
func (h *Handler) VoteOnReply(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discussion ID format")
		return
	}
	replyID := c.Param("replyId")

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", h.detail(err)...)
		return
	}
	if err := ValidateVoteRequest(&req); err != nil {
		response.BadRequest(c, "Error voting on reply", err.Error())
		return
	}

	d, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error voting on reply", h.detail(err)...)
		return
	}

	reply := d.ReplyByID(replyID)
	if reply == nil {
		response.NotFound(c, "Reply not found")
		return
	}

	reply.Votes.Apply(req.WalletAddress, VoteType(req.VoteType))

	updated, err := h.repo.SaveReplyVotes(c.Request.Context(), id, replyID, reply.Votes)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.InternalServerError(c, "Error voting on reply", h.detail(err)...)
		return
	}

	metrics.IncVoteCast("reply")
	updated.ComputeVoteCounts()
	response.Success(c, updated)
}
