package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/catalog"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/eligibility"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/flow"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// Handler carries the core components the HTTP layer orchestrates.
type Handler struct {
	Flow  *flow.Controller
	Store eligibility.Store
	Cards *catalog.Catalog
}

// New builds the public-API handler.
func New(f *flow.Controller, store eligibility.Store, cards *catalog.Catalog) *Handler {
	return &Handler{Flow: f, Store: store, Cards: cards}
}

// sessionRequest is the JSON payload from the welcome form.
type sessionRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// CreateSession handles POST /api/v1/sessions. This is the validation
// boundary: incomplete fields, short phone numbers and already-played
// numbers are rejected here, before the flow controller runs.
func (h *Handler) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	if req.FullName == "" || req.PhoneNumber == "" || req.DOB == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vui lòng điền đầy đủ thông tin!"})
		return
	}

	phone := eligibility.NormalizePhone(req.PhoneNumber)
	if len(phone) < 9 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Số điện thoại không hợp lệ."})
		return
	}

	// Two concurrent submissions with the same phone can both pass this
	// check; the store's unique phone key arbitrates the write, so at
	// most one record survives.
	if h.Store.HasPlayed(eligibility.KeyFor(phone)) {
		c.JSON(http.StatusConflict, gin.H{"error": "Số điện thoại này đã nhận quẻ rồi. Mỗi người chỉ được 1 lần nhé!"})
		return
	}

	sess, err := h.Flow.Submit(models.Identity{
		FullName:    req.FullName,
		PhoneNumber: phone,
		DOB:         req.DOB,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		// A failed draw means the card set is broken; nothing the
		// visitor can do will fix it.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Card catalog is misconfigured: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"state":     sess.State,
	})
}

// GetSession handles GET /api/v1/sessions/:id. The front end polls it
// while the drawing animation runs; once the state is RESULT the
// response carries the drawn card and the identity.
func (h *Handler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	sess, ok := h.Flow.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	resp := gin.H{
		"sessionId": sess.ID,
		"state":     sess.State,
	}
	if sess.State == flow.StateResult && sess.Entry != nil {
		resp["card"] = sess.Entry
		resp["user"] = gin.H{
			"fullName":    sess.Identity.FullName,
			"phoneNumber": sess.Identity.PhoneNumber,
			"dob":         sess.Identity.DOB,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListCards handles GET /api/v1/cards.
func (h *Handler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": h.Cards.Entries()})
}
