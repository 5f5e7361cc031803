package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fashionistas/fashionistas-api/internal/auth"
	"github.com/fashionistas/fashionistas-api/internal/domain"
	redisrepo "github.com/fashionistas/fashionistas-api/internal/repository/redis"
	"github.com/fashionistas/fashionistas-api/internal/service"
	"github.com/fashionistas/fashionistas-api/internal/service/applications"
	"github.com/fashionistas/fashionistas-api/internal/service/events"
	"github.com/fashionistas/fashionistas-api/internal/service/query"
	"github.com/fashionistas/fashionistas-api/internal/service/registration"
	"github.com/fashionistas/fashionistas-api/internal/service/sponsor"
	"github.com/fashionistas/fashionistas-api/internal/service/tickets"
)

type Deps struct {
	Services *service.Services
	Idem     *redisrepo.IdempotencyStore
	Limiter  *redisrepo.SlidingWindowLimiter
	Tokens   *auth.Tokens
}

func NewRouter(deps Deps, logger *slog.Logger, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	svcs := deps.Services
	authed := AuthRequired(deps.Tokens)

	api := r.Group("/api")

	// Public reads
	api.GET("/events", handleListEvents(svcs))
	api.GET("/events/:id", handleGetEvent(svcs))
	api.GET("/events/:id/tickets", handleListEventTickets(svcs))

	// Event admin
	api.POST("/events", authed, handleCreateEvent(svcs))
	api.PUT("/events/:id", authed, handleUpdateEvent(svcs))
	api.DELETE("/events/:id", authed, handleDeleteEvent(svcs))

	// Registrations
	api.POST("/registrations", authed, handleCreateRegistration(deps))
	api.POST("/registrations/:id/confirm", authed, handleConfirmRegistration(svcs))
	api.POST("/registrations/:id/cancel", authed, handleCancelRegistration(svcs))
	api.PATCH("/registrations/:id/attendees", authed, handleUpdateAttendees(svcs))
	api.GET("/registrations/user/:userId", authed, handleListUserRegistrations(svcs))
	api.GET("/registrations/event/:eventId", authed, handleListEventRegistrations(svcs))

	// Tickets
	api.POST("/tickets", authed, handleCreateTicket(svcs))
	api.PUT("/tickets/:id", authed, handleUpdateTicket(svcs))
	api.POST("/tickets/purchase", authed, handlePurchase(deps))

	// Sponsor allocations
	api.POST("/tickets/sponsor/allocations", authed, handleCreateAllocation(svcs))
	api.GET("/tickets/sponsor/allocations", authed, handleListAllocations(svcs))
	api.GET("/tickets/sponsor/allocations/:id/redemptions", authed, handleListRedemptions(svcs))
	api.POST("/tickets/sponsor/redeem", authed, handleRedeem(svcs))

	// Applications
	api.POST("/applications", authed, handleSubmitApplication(svcs))
	api.GET("/applications/event/:eventId", authed, handleListApplications(svcs))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List events
// @Param    limit   query  int  false "page size"
// @Param    offset  query  int  false "offset"
// @Success  200  {object}  Envelope
// @Router   /api/events [get]
func handleListEvents(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		page, err := svcs.Query.ListEvents(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, success(page), "public, max-age=15", true)
	}
}

// @Summary  Get event
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  Envelope
// @Failure  404  {object}  Envelope
// @Router   /api/events/{id} [get]
func handleGetEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		e, err := svcs.Query.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, success(e), "public, max-age=60", true)
	}
}

// @Summary  List an event's ticket tiers
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  Envelope
// @Router   /api/events/{id}/tickets [get]
func handleListEventTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		tiers, err := svcs.Query.ListEventTickets(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, success(tiers), "public, max-age=15", true)
	}
}

// @Summary  Create event
// @Param    req body  CreateEventRequest true "payload"
// @Success  201 {object} Envelope
// @Failure  400 {object} Envelope
// @Router   /api/events [post]
func handleCreateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		starts, err := parseRFC3339(req.StartsAt)
		if err != nil {
			badRequest(c, "invalid starts_at (RFC3339)")
			return
		}
		ends, err := parseRFC3339(req.EndsAt)
		if err != nil {
			badRequest(c, "invalid ends_at (RFC3339)")
			return
		}

		e := &domain.Event{
			OrganizerID: userID(c),
			Title:       req.Title,
			Description: req.Description,
			Venue:       req.Venue,
			Capacity:    req.Capacity,
			Starts:      starts,
			Ends:        ends,
			Status:      domain.EventStatus(req.Status),
		}

		if req.RegistrationDeadline != nil {
			deadline, err := parseRFC3339(*req.RegistrationDeadline)
			if err != nil {
				badRequest(c, "invalid registration_deadline (RFC3339)")
				return
			}
			e.RegistrationDeadline = &deadline
		}

		id, err := svcs.Events.Create(c.Request.Context(), e)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, success(gin.H{"event_id": id}))
	}
}

// @Summary  Update event
// @Param    id  path  int  true  "Event ID"
// @Param    req body  CreateEventRequest true "payload"
// @Success  200 {object} Envelope
// @Failure  404 {object} Envelope
// @Router   /api/events/{id} [put]
func handleUpdateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		starts, err := parseRFC3339(req.StartsAt)
		if err != nil {
			badRequest(c, "invalid starts_at (RFC3339)")
			return
		}
		ends, err := parseRFC3339(req.EndsAt)
		if err != nil {
			badRequest(c, "invalid ends_at (RFC3339)")
			return
		}

		e := &domain.Event{
			ID:          eventID,
			Title:       req.Title,
			Description: req.Description,
			Venue:       req.Venue,
			Capacity:    req.Capacity,
			Starts:      starts,
			Ends:        ends,
			Status:      domain.EventStatus(req.Status),
		}

		if req.RegistrationDeadline != nil {
			deadline, err := parseRFC3339(*req.RegistrationDeadline)
			if err != nil {
				badRequest(c, "invalid registration_deadline (RFC3339)")
				return
			}
			e.RegistrationDeadline = &deadline
		}

		if err := svcs.Events.Update(c.Request.Context(), e); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{"event_id": eventID}))
	}
}

// @Summary  Soft-delete event
// @Param    id  path  int  true  "Event ID"
// @Success  200 {object} Envelope
// @Failure  404 {object} Envelope
// @Router   /api/events/{id} [delete]
func handleDeleteEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Events.Delete(c.Request.Context(), eventID); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{"event_id": eventID, "deleted": true}))
	}
}

// @Summary  Create registration (idempotent)
// @Param    req body  CreateRegistrationRequest true "payload"
// @Success  201 {object} Envelope
// @Failure  400 {object} Envelope "validation / sold out"
// @Router   /api/registrations [post]
func handleCreateRegistration(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		uid := userID(c)
		storageKey := idemStorageKey(c, deps.Idem, redisrepo.KeyIdemRegistration(uid, idemKey(c)))

		runIdempotent(c, deps.Idem, storageKey, http.StatusCreated, func() (any, error) {
			reg, err := deps.Services.Registrations.Create(
				c.Request.Context(),
				req.EventID,
				req.TicketID,
				uid,
				toAttendees(req.Attendees),
			)
			if err != nil {
				return nil, err
			}
			return reg, nil
		})
	}
}

// @Summary  Confirm registration
// @Param    id  path  string  true  "Registration ID (uuid)"
// @Param    req body  ConfirmRegistrationRequest true "payload"
// @Success  200 {object} Envelope
// @Failure  400 {object} Envelope "missing payment id"
// @Router   /api/registrations/{id}/confirm [post]
func handleConfirmRegistration(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req ConfirmRegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		reg, err := svcs.Registrations.Confirm(c.Request.Context(), id, req.PaymentIntentID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(reg))
	}
}

// @Summary  Cancel registration
// @Param    id  path  string  true  "Registration ID (uuid)"
// @Success  200 {object} Envelope
// @Failure  404 {object} Envelope
// @Router   /api/registrations/{id}/cancel [post]
func handleCancelRegistration(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Registrations.Cancel(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{"registration_id": id.String(), "cancelled": true}))
	}
}

// @Summary  Replace attendee details
// @Param    id  path  string  true  "Registration ID (uuid)"
// @Param    req body  UpdateAttendeesRequest true "payload"
// @Success  200 {object} Envelope
// @Failure  400 {object} Envelope "validation"
// @Router   /api/registrations/{id}/attendees [patch]
func handleUpdateAttendees(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req UpdateAttendeesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Registrations.UpdateAttendees(c.Request.Context(), id, toAttendees(req.Attendees)); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{"registration_id": id.String()}))
	}
}

// @Summary  List a user's registrations
// @Param    userId  path  int  true  "User ID"
// @Success  200 {object} Envelope
// @Router   /api/registrations/user/{userId} [get]
func handleListUserRegistrations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := parseInt64Param(c, "userId")
		if !ok {
			return
		}
		regs, err := svcs.Registrations.ListByUser(c.Request.Context(), uid)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(regs))
	}
}

// @Summary  List an event's registrations
// @Param    eventId  path  int  true  "Event ID"
// @Success  200 {object} Envelope
// @Failure  404 {object} Envelope
// @Router   /api/registrations/event/{eventId} [get]
func handleListEventRegistrations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "eventId")
		if !ok {
			return
		}
		regs, err := svcs.Registrations.ListByEvent(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(regs))
	}
}

// @Summary  Create ticket tier
// @Param    req body  CreateTicketRequest true "payload"
// @Success  201 {object} Envelope
// @Router   /api/tickets [post]
func handleCreateTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		tier := &domain.TicketTier{
			EventID:              req.EventID,
			TicketType:           req.TicketType,
			Price:                req.Price,
			QuantityAvailable:    req.QuantityAvailable,
			EarlyBirdPrice:       req.EarlyBirdPrice,
			EarlyBirdDeadline:    req.EarlyBirdDeadline,
			GroupThreshold:       req.GroupThreshold,
			GroupDiscountPercent: req.GroupDiscountPercent,
			Benefits:             req.Benefits,
		}

		id, err := svcs.Tickets.CreateTier(c.Request.Context(), tier)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, success(gin.H{"ticket_id": id}))
	}
}

// @Summary  Update ticket tier
// @Param    id  path  int  true  "Ticket ID"
// @Param    req body  UpdateTicketRequest true "payload"
// @Success  200 {object} Envelope
// @Router   /api/tickets/{id} [put]
func handleUpdateTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		current, err := svcs.Tickets.Get(c.Request.Context(), ticketID)
		if err != nil {
			respondErr(c, err)
			return
		}

		tier := &domain.TicketTier{
			ID:                   ticketID,
			EventID:              current.EventID,
			TicketType:           req.TicketType,
			Price:                req.Price,
			QuantityAvailable:    current.QuantityAvailable,
			EarlyBirdPrice:       req.EarlyBirdPrice,
			EarlyBirdDeadline:    req.EarlyBirdDeadline,
			GroupThreshold:       req.GroupThreshold,
			GroupDiscountPercent: req.GroupDiscountPercent,
			Benefits:             req.Benefits,
		}

		if err := svcs.Tickets.UpdateTier(c.Request.Context(), tier); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{"ticket_id": ticketID}))
	}
}

// @Summary  Purchase tickets (idempotent, rate limited)
// @Param    req body  PurchaseRequest true "payload"
// @Success  200 {object} Envelope
// @Failure  400 {object} Envelope "validation / insufficient inventory"
// @Failure  404 {object} Envelope
// @Failure  429 {object} Envelope
// @Router   /api/tickets/purchase [post]
func handlePurchase(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if deps.Limiter != nil {
			ok, _, retry, err := deps.Limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
			if err != nil {
				respondErr(c, err)
				return
			}
			if !ok {
				c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
				c.JSON(http.StatusTooManyRequests, failure("rate limited"))
				return
			}
		}

		uid := userID(c)
		storageKey := idemStorageKey(c, deps.Idem, redisrepo.KeyIdemPurchase(uid, idemKey(c)))

		runIdempotent(c, deps.Idem, storageKey, http.StatusOK, func() (any, error) {
			p, err := deps.Services.Tickets.Purchase(
				c.Request.Context(),
				req.TicketID,
				req.Quantity,
				uid,
				toAttendees(req.Attendees),
			)
			if err != nil {
				return nil, err
			}
			return p, nil
		})
	}
}

// @Summary  Create sponsor allocation
// @Param    req body  CreateAllocationRequest true "payload"
// @Success  201 {object} Envelope
// @Router   /api/tickets/sponsor/allocations [post]
func handleCreateAllocation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAllocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		alloc := &domain.SponsorTicketAllocation{
			SponsorID:         req.SponsorID,
			EventID:           req.EventID,
			TicketType:        req.TicketType,
			QuantityAllocated: req.QuantityAllocated,
			ExpiresAt:         req.ExpiresAt,
		}

		id, err := svcs.Sponsors.CreateAllocation(c.Request.Context(), alloc)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, success(gin.H{"allocation_id": id}))
	}
}

// @Summary  List sponsor allocations
// @Param    sponsor_id  query  int  true  "Sponsor ID"
// @Success  200 {object} Envelope
// @Router   /api/tickets/sponsor/allocations [get]
func handleListAllocations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sponsorID, err := strconv.ParseInt(c.Query("sponsor_id"), 10, 64)
		if err != nil {
			badRequest(c, "invalid sponsor_id")
			return
		}
		allocs, err := svcs.Sponsors.ListAllocations(c.Request.Context(), sponsorID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(allocs))
	}
}

// @Summary  List an allocation's redemptions
// @Param    id  path  int  true  "Allocation ID"
// @Success  200 {object} Envelope
// @Router   /api/tickets/sponsor/allocations/{id}/redemptions [get]
func handleListRedemptions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		allocationID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		reds, err := svcs.Sponsors.ListRedemptions(c.Request.Context(), allocationID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(reds))
	}
}

// @Summary  Redeem a sponsor ticket
// @Param    req body  RedeemRequest true "payload"
// @Success  200 {object} Envelope
// @Failure  400 {object} Envelope "allocation unavailable"
// @Router   /api/tickets/sponsor/redeem [post]
func handleRedeem(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RedeemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		red, err := svcs.Sponsors.Redeem(c.Request.Context(), req.AllocationID, req.RedeemedBy)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(red))
	}
}

// @Summary  Submit an application
// @Param    req body  SubmitApplicationRequest true "payload"
// @Success  201 {object} Envelope
// @Router   /api/applications [post]
func handleSubmitApplication(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		app := &domain.Application{
			EventID: req.EventID,
			Role:    domain.ApplicationRole(req.Role),
			Name:    req.Name,
			Email:   req.Email,
			Details: req.Details,
		}

		saved, err := svcs.Applications.Submit(c.Request.Context(), app)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, success(saved))
	}
}

// @Summary  List an event's applications
// @Param    eventId  path  int  true  "Event ID"
// @Success  200 {object} Envelope
// @Router   /api/applications/event/{eventId} [get]
func handleListApplications(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "eventId")
		if !ok {
			return
		}
		apps, err := svcs.Applications.ListByEvent(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, success(apps))
	}
}

// --- Idempotency helpers ---

func idemKey(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Idempotency-Key"))
}

// idemStorageKey resolves the redis key for this request, or "" when the
// client sent no Idempotency-Key.
func idemStorageKey(c *gin.Context, idem *redisrepo.IdempotencyStore, key string) string {
	if idem == nil || idemKey(c) == "" {
		return ""
	}
	return key
}

// runIdempotent executes fn once per Idempotency-Key. A replayed key answers
// with the stored envelope; a key still in flight answers 409.
func runIdempotent(
	c *gin.Context,
	idem *redisrepo.IdempotencyStore,
	storageKey string,
	successStatus int,
	fn func() (any, error),
) {
	replay := func() bool {
		payload, ok, _ := idem.GetResult(c.Request.Context(), storageKey)
		if !ok {
			return false
		}
		c.Header("Idempotency-Key", idemKey(c))
		c.Data(successStatus, "application/json; charset=utf-8", []byte(payload))
		return true
	}

	if storageKey != "" {
		if replay() {
			return
		}

		locked, err := idem.AcquireLock(c.Request.Context(), storageKey, 60*time.Second)
		if err != nil {
			respondErr(c, err)
			return
		}
		if !locked {
			if replay() {
				return
			}
			c.Header("Retry-After", "1")
			c.JSON(http.StatusConflict, failure("idempotency key in progress"))
			return
		}
	}

	data, err := fn()
	if err != nil {
		if storageKey != "" {
			_ = idem.Release(c.Request.Context(), storageKey)
		}
		respondErr(c, err)
		return
	}

	env := success(data)

	if storageKey != "" {
		b, _ := json.Marshal(env)
		_ = idem.SaveResult(c.Request.Context(), storageKey, string(b))
		c.Header("Idempotency-Key", idemKey(c))
	}

	c.JSON(successStatus, env)
}

// --- Helpers ---

func userID(c *gin.Context) int64 {
	v, ok := c.Get("user_id")
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, failure(msg))
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// validation
	case errors.Is(err, events.ErrValidation),
		errors.Is(err, registration.ErrValidation),
		errors.Is(err, tickets.ErrValidation),
		errors.Is(err, sponsor.ErrValidation),
		errors.Is(err, applications.ErrValidation):
		c.JSON(http.StatusBadRequest, failure(err.Error()))
	// business rules -> 400
	case errors.Is(err, registration.ErrSoldOut):
		c.JSON(http.StatusBadRequest, failure("ticket tier is sold out"))
	case errors.Is(err, registration.ErrRegistrationClosed):
		c.JSON(http.StatusBadRequest, failure("registration deadline has passed"))
	case errors.Is(err, registration.ErrMissingPaymentIntent):
		c.JSON(http.StatusBadRequest, failure("payment_intent_id is required"))
	case errors.Is(err, registration.ErrNotConfirmable):
		c.JSON(http.StatusBadRequest, failure("registration cannot be confirmed"))
	case errors.Is(err, tickets.ErrInsufficientInventory):
		c.JSON(http.StatusBadRequest, failure("not enough tickets available"))
	case errors.Is(err, sponsor.ErrAllocationUnavailable):
		c.JSON(http.StatusBadRequest, failure("allocation exhausted or expired"))
	// not found -> 404
	case errors.Is(err, events.ErrEventNotFound),
		errors.Is(err, query.ErrEventNotFound),
		errors.Is(err, registration.ErrEventNotFound),
		errors.Is(err, tickets.ErrEventNotFound),
		errors.Is(err, applications.ErrEventNotFound):
		c.JSON(http.StatusNotFound, failure("event not found"))
	case errors.Is(err, registration.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, failure("registration not found"))
	case errors.Is(err, registration.ErrTicketNotFound),
		errors.Is(err, tickets.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, failure("ticket tier not found"))
	case errors.Is(err, sponsor.ErrAllocationNotFound):
		c.JSON(http.StatusNotFound, failure("allocation not found"))
	default:
		c.JSON(http.StatusInternalServerError, failure("internal error"))
	}
}
