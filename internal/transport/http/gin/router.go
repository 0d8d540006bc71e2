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
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/payment"
	redisrepo "github.com/kirinyoku/crew-go/internal/repository/redis"
	"github.com/kirinyoku/crew-go/internal/service"
	"github.com/kirinyoku/crew-go/internal/service/admin"
	"github.com/kirinyoku/crew-go/internal/service/assignment"
	"github.com/kirinyoku/crew-go/internal/service/autoassign"
	"github.com/kirinyoku/crew-go/internal/service/booking"
	"github.com/kirinyoku/crew-go/internal/service/query"
	"github.com/kirinyoku/crew-go/internal/service/shift"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
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

	// Public API
	r.GET("/events/:id", handleGetEvent(svcs))
	r.GET("/events/:id/availability", handleGetAvailability(svcs))

	r.POST("/events/:id/assignments", handleCreateAssignment(svcs, idem))
	r.POST("/events/:id/assignments/quick", handleQuickAssign(svcs))
	r.POST("/events/:id/auto-assign", handleAutoAssign(svcs))

	r.GET("/bookings/:id", handleGetBooking(svcs))
	r.POST("/bookings/:id/decision", handleDecideBooking(svcs, idem))

	r.POST("/assignments/:id/shifts", handleCreateShift(svcs))
	r.GET("/assignments/:id/shifts", handleListShifts(svcs))
	r.PUT("/shifts/:id", handleUpdateShift(svcs))

	r.GET("/staff", handleListStaff(svcs))

	// Admin-API
	// TODO: add admin middleware
	adm := r.Group("/admin")
	{
		adm.POST("/events", handleCreateEvent(svcs))
		adm.PATCH("/events/:id/status", handleUpdateEventStatus(svcs))
		adm.DELETE("/events/:id", handleDeleteEvent(svcs))
		adm.POST("/staff", handleCreateStaff(svcs))
		adm.POST("/bookings", handleCreateBooking(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Get event snapshot with assignments and revenue
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  domain.EventSnapshot
// @Failure  404  {object}  ErrorResponse
// @Router   /events/{id} [get]
func handleGetEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		snap, err := svcs.Query.EventSnapshot(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, snap, "public, max-age=60", true)
	}
}

// @Summary  Get per-role availability counters
// @Param    id  path  int  true  "Event ID"
// @Success  200  {array}  domain.Role
// @Router   /events/{id}/availability [get]
func handleGetAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		roles, err := svcs.Query.Availability(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, roles, "public, max-age=15", true)
	}
}

// @Summary  Create assignment (idempotent)
// @Param    id  path  int  true  "Event ID"
// @Param    req body  CreateAssignmentRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} domain.EventSnapshot
// @Failure  400 {object} ErrorResponse "invalid payment / missing role name"
// @Failure  409 {object} ErrorResponse "role full / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /events/{id}/assignments [post]
func handleCreateAssignment(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CreateAssignmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemAssignment(eventID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		snap, err := svcs.Assignment.Create(c.Request.Context(), assignment.CreateInput{
			EventID:      eventID,
			StaffID:      req.StaffID,
			RoleName:     req.RoleName,
			Payment:      req.Payment.toDomain(),
			RateLimitKey: "ip:" + c.ClientIP(),
		})
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(snap)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, snap)
	}
}

// @Summary  Quick-assign staff to a role with pending payment
// @Param    id  path  int  true  "Event ID"
// @Param    req body  QuickAssignRequest true "payload"
// @Success  201 {object} domain.EventSnapshot
// @Failure  409 {object} ErrorResponse "role full"
// @Router   /events/{id}/assignments/quick [post]
func handleQuickAssign(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req QuickAssignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		snap, err := svcs.Assignment.QuickAssign(
			c.Request.Context(),
			eventID,
			req.StaffID,
			req.RoleName,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, snap)
	}
}

// @Summary  Auto-fill open roles from match suggestions
// @Param    id  path  int  true  "Event ID"
// @Success  200 {object} autoassign.Report
// @Failure  502 {object} ErrorResponse "matching service unavailable"
// @Router   /events/{id}/auto-assign [post]
func handleAutoAssign(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		report, err := svcs.AutoAssign.Fill(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// @Summary  Get booking request
// @Param    id  path  int  true  "Booking ID"
// @Success  200 {object} domain.Booking
// @Router   /bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		b, err := svcs.Query.Booking(c.Request.Context(), bookingID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, b, "public, max-age=60", true)
	}
}

// @Summary  Approve or reject a booking (idempotent)
// @Param    id  path  int  true  "Booking ID"
// @Param    req body  DecideBookingRequest true "payload"
// @Success  200 {object} domain.Booking
// @Failure  409 {object} ErrorResponse "already decided"
// @Router   /bookings/{id}/decision [post]
func handleDecideBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req DecideBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemDecision(bookingID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusOK,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		b, err := svcs.Booking.Decide(
			c.Request.Context(),
			bookingID,
			domain.Decision(req.Decision),
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			payload, _ := json.Marshal(b)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(payload))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusOK, b)
	}
}

// @Summary  Create shift for an approved assignment
// @Param    id  path  string  true  "Assignment ID (uuid)"
// @Param    req body  ShiftRequest true "payload"
// @Success  201 {object} domain.Shift
// @Failure  409 {object} ErrorResponse "assignment not approved"
// @Router   /assignments/{id}/shifts [post]
func handleCreateShift(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sh, err := svcs.Shift.Create(c.Request.Context(), c.Param("id"), shift.Input{
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Role:         req.Role,
			Wage:         req.Wage,
			Instructions: req.Instructions,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, sh)
	}
}

// @Summary  List shifts for an assignment
// @Param    id  path  string  true  "Assignment ID (uuid)"
// @Success  200 {array} domain.Shift
// @Router   /assignments/{id}/shifts [get]
func handleListShifts(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		shifts, err := svcs.Shift.ListByAssignment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, shifts)
	}
}

// @Summary  Update shift schedule
// @Param    id  path  string  true  "Shift ID (uuid)"
// @Param    req body  ShiftRequest true "payload"
// @Success  200 {object} domain.Shift
// @Router   /shifts/{id} [put]
func handleUpdateShift(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sh, err := svcs.Shift.Update(c.Request.Context(), c.Param("id"), shift.Input{
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Role:         req.Role,
			Wage:         req.Wage,
			Instructions: req.Instructions,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, sh)
	}
}

// @Summary  List staff directory
// @Success  200 {array} domain.Staff
// @Router   /staff [get]
func handleListStaff(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := svcs.Query.StaffDirectory(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, staff, "public, max-age=300", true)
	}
}

// @Summary  Create event with role slots
// @Param    req body  CreateEventRequest true "payload"
// @Success  201 {object} CreateEventResponse
// @Router   /admin/events [post]
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
		var ends *time.Time
		if req.EndsAt != "" {
			t, err := parseRFC3339(req.EndsAt)
			if err != nil {
				badRequest(c, "invalid ends_at (RFC3339)")
				return
			}
			ends = &t
		}
		roles := make([]domain.Role, 0, len(req.Roles))
		for _, r := range req.Roles {
			roles = append(roles, domain.Role{Name: r.Name, Count: r.Count})
		}
		id, err := svcs.Admin.CreateEvent(c.Request.Context(), admin.CreateEventInput{
			Event: domain.Event{
				Title:           req.Title,
				Location:        req.Location,
				Description:     req.Description,
				StartsAt:        starts,
				EndsAt:          ends,
				Roles:           roles,
				Budget:          req.Budget,
				ExplicitRevenue: req.ExplicitRevenue,
			},
			SeedDefaultRole: req.SeedDefaultRole,
			StaffRequired:   req.StaffRequired,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateEventResponse{EventID: id})
	}
}

// @Summary  Update event status
// @Param    id  path  int  true  "Event ID"
// @Param    req body  UpdateEventStatusRequest true "payload"
// @Success  204
// @Failure  409 {object} ErrorResponse "invalid transition"
// @Router   /admin/events/{id}/status [patch]
func handleUpdateEventStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateEventStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Admin.UpdateEventStatus(
			c.Request.Context(),
			eventID,
			domain.EventStatus(req.Status),
		); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Delete event
// @Param    id  path  int  true  "Event ID"
// @Success  204
// @Router   /admin/events/{id} [delete]
func handleDeleteEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Admin.DeleteEvent(c.Request.Context(), eventID); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Create staff member
// @Param    req body  CreateStaffRequest true "payload"
// @Success  201 {object} CreateStaffResponse
// @Router   /admin/staff [post]
func handleCreateStaff(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStaffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Admin.CreateStaff(c.Request.Context(), domain.Staff{
			Name:         req.Name,
			RoleTag:      req.RoleTag,
			Availability: req.Availability,
			BaseRate:     req.BaseRate,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateStaffResponse{StaffID: id})
	}
}

// @Summary  Register booking request
// @Param    req body  CreateBookingRequest true "payload"
// @Success  201 {object} CreateBookingResponse
// @Router   /admin/bookings [post]
func handleCreateBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			badRequest(c, "invalid date (RFC3339 or YYYY-MM-DD)")
			return
		}
		id, err := svcs.Admin.CreateBooking(c.Request.Context(), domain.Booking{
			EventType:  req.EventType,
			Location:   req.Location,
			Date:       date,
			Duration:   req.Duration,
			BudgetNote: req.BudgetNote,
			Contact: domain.Contact{
				Name:  req.ContactName,
				Email: req.ContactEmail,
				Phone: req.ContactPhone,
			},
			Venue:               req.Venue,
			SpecialRequirements: req.SpecialRequirements,
			Staff: domain.StaffCounts{
				Servers: req.Servers,
				Hosts:   req.Hosts,
				Other:   req.Other,
			},
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateBookingResponse{BookingID: id})
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// payment validation
	case errors.Is(err, payment.ErrInvalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, payment.ErrNonPositiveTotal):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payment total must be positive"})
		return
	// assignment service
	case errors.Is(err, assignment.ErrRoleNameRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role name is required"})
		return
	case errors.Is(err, assignment.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, assignment.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "staff not found"})
		return
	case errors.Is(err, assignment.ErrRoleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "role not found on event"})
		return
	case errors.Is(err, assignment.ErrRoleFull):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "role at capacity"})
		return
	// auto-assign service
	case errors.Is(err, autoassign.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, autoassign.ErrMatcherUnavailable):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "matching service unavailable"})
		return
	// booking service
	case errors.Is(err, booking.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "decision must be approve or reject"})
		return
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "booking already decided"})
		return
	// shift service
	case errors.Is(err, shift.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, shift.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "assignment not found"})
		return
	case errors.Is(err, shift.ErrShiftNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "shift not found"})
		return
	case errors.Is(err, shift.ErrAssignmentNotApproved):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "assignment is not approved"})
		return
	// admin service
	case errors.Is(err, admin.ErrInvalidRoles):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role list"})
		return
	case errors.Is(err, admin.ErrInvalidBudget):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "budget total does not match buckets"})
		return
	case errors.Is(err, admin.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, admin.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "invalid event status transition"})
		return
	// query service
	case errors.Is(err, query.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, query.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
