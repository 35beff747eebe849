package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/internal/query"
	"github.com/romahawk/flowlogix/internal/roles"
	"github.com/romahawk/flowlogix/internal/service"
	"github.com/romahawk/flowlogix/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type OrderService interface {
	ListOrders(ctx context.Context, scope entities.RoleScope, plan query.Plan) (query.Page, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	DeliverOrder(ctx context.Context, id, actorID int64, canEdit bool) error
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrderByID)
		r.Post("/{id}/deliver", h.DeliverOrder)
	})
}

// ListOrders returns a filtered, sorted page of orders.
// @Summary      List orders
// @Description  Filter, sort and paginate purchase orders visible to the caller
// @Tags         orders
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        per_page  query  int     false  "Page size, 1..100"
// @Param        sort      query  string  false  "Comma-separated field:direction pairs"
// @Success      200  {object}  utils.Envelope
// @Failure      400  {object}  utils.ErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Missing identity"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /api/v1/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	ident, ok := identityFromRequest(r)
	if !ok {
		utils.WriteError(w, "UNAUTHENTICATED", "missing user identity", http.StatusUnauthorized)
		return
	}

	plan, err := query.ParseParams(r.URL.Query())
	if err != nil {
		var verr *query.ValidationError
		if errors.As(err, &verr) {
			listRequestTotal.WithLabelValues("invalid").Inc()
			utils.WriteValidationError(w, verr.Details)
			return
		}
		utils.WriteError(w, "INTERNAL", "internal server error", http.StatusInternalServerError)
		return
	}

	page, err := h.svc.ListOrders(ctx, ident.scope(), plan)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		listRequestTotal.WithLabelValues("error").Inc()
		utils.WriteError(w, "INTERNAL", "internal server error", http.StatusInternalServerError)
		return
	}

	listRequestTotal.WithLabelValues("ok").Inc()
	listRequestDuration.Observe(time.Since(start).Seconds())
	utils.WriteOK(w, OrdersToJSON(page.Orders), MetaFromPage(page))
}

// GetOrderByID returns a single order.
// @Summary      Get order by id
// @Tags         orders
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /api/v1/orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := identityFromRequest(r)
	if !ok {
		utils.WriteError(w, "UNAUTHENTICATED", "missing user identity", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteValidationError(w, []query.FieldIssue{{Field: "id", Issue: "must be an integer"}})
		return
	}

	order, err := h.svc.GetOrderByID(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "NOT_FOUND", "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("id", id))
		utils.WriteError(w, "INTERNAL", "internal server error", http.StatusInternalServerError)
		return
	}

	// Owners without the view-all capability must not see foreign orders;
	// respond as if the row did not exist.
	scope := ident.scope()
	if !scope.All && order.UserID != scope.UserID {
		utils.WriteError(w, "NOT_FOUND", "order not found", http.StatusNotFound)
		return
	}

	utils.WriteOK(w, OrderToJSON(order), nil)
}

// DeliverOrder archives an order as delivered.
// @Summary      Deliver an order directly from the dashboard
// @Tags         orders
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  utils.Envelope
// @Failure      403  {object}  utils.ErrorResponse "Permission denied"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /api/v1/orders/{id}/deliver [post]
func (h *HTTPHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := identityFromRequest(r)
	if !ok {
		utils.WriteError(w, "UNAUTHENTICATED", "missing user identity", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteValidationError(w, []query.FieldIssue{{Field: "id", Issue: "must be an integer"}})
		return
	}

	err = h.svc.DeliverOrder(ctx, id, ident.userID, roles.CanEdit(ident.role))
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "NOT_FOUND", "order not found", http.StatusNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		utils.WriteError(w, "FORBIDDEN", "you may not deliver this order", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, "INVALID_ORDER", "order must have an order number", http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to deliver order", slog.Any("error", err), slog.Int64("id", id))
		utils.WriteError(w, "INTERNAL", "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteOK(w, map[string]bool{"delivered": true}, nil)
	}
}

// identity is what the auth layer hands us: who is asking and which role
// they carry. The tracker only consumes it as capability checks.
type identity struct {
	userID int64
	role   string
}

func (i identity) scope() entities.RoleScope {
	return entities.RoleScope{All: roles.CanViewAll(i.role), UserID: i.userID}
}

func identityFromRequest(r *http.Request) (identity, bool) {
	id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil {
		return identity{}, false
	}
	return identity{userID: id, role: r.Header.Get("X-User-Role")}, true
}
