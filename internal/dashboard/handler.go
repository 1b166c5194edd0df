// Package dashboard serves the admin API client to the browser from the
// relay's own origin. Every body is a result envelope.
package dashboard

import (
	"context"
	"net/http"

	"AdminRelay/internal/adminapi"
	"AdminRelay/internal/domain/order"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const msgBadRequest = "Malformed request"

// AuditTrail records status changes made through the dashboard.
type AuditTrail interface {
	OrderStatusChanged(ctx context.Context, orderID, status string, trackingID *string)
}

type Handler struct {
	client adminapi.Client
	audit  AuditTrail
}

func NewHandler(client adminapi.Client, audit AuditTrail) *Handler {
	return &Handler{client: client, audit: audit}
}

// Overview is the combined first screen of the dashboard.
type Overview struct {
	Orders []order.Order `json:"orders"`
	Stats  order.Stats   `json:"stats"`
}

func (h *Handler) Orders(c *gin.Context) {
	var filter order.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, adminapi.Fail[[]order.Order](msgBadRequest))
		return
	}
	if filter.Status != "" {
		if _, err := order.NewStatus(string(filter.Status)); err != nil {
			c.JSON(http.StatusBadRequest, adminapi.Fail[[]order.Order](err.Error()))
			return
		}
	}

	respond(c, h.client.GetAllOrders(c.Request.Context(), filter))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var body order.StatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, adminapi.Fail[struct{}](msgBadRequest))
		return
	}

	ctx := c.Request.Context()
	orderID := c.Param("id")

	res := h.client.UpdateOrderStatus(ctx, orderID, body.Status, body.TrackingID)
	if res.Success {
		h.audit.OrderStatusChanged(ctx, orderID, string(body.Status), body.TrackingID)
	}

	respond(c, res)
}

func (h *Handler) Stats(c *gin.Context) {
	respond(c, h.client.GetOrderStats(c.Request.Context()))
}

// callFailed carries the message of the first failed call out of the group.
type callFailed struct {
	message string
}

func (e callFailed) Error() string {
	return e.message
}

// Overview fetches orders and stats concurrently. The first failure cancels
// the other call and its message is returned.
func (h *Handler) Overview(c *gin.Context) {
	g, ctx := errgroup.WithContext(c.Request.Context())

	var orders adminapi.Result[[]order.Order]
	var stats adminapi.Result[order.Stats]

	g.Go(func() error {
		orders = h.client.GetAllOrders(ctx, order.Filter{})
		if !orders.Success {
			return callFailed{message: orders.Message}
		}
		return nil
	})
	g.Go(func() error {
		stats = h.client.GetOrderStats(ctx)
		if !stats.Success {
			return callFailed{message: stats.Message}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		respond(c, adminapi.Fail[Overview](err.Error()))
		return
	}

	respond(c, adminapi.OK(Overview{Orders: *orders.Data, Stats: *stats.Data}))
}

func respond[T any](c *gin.Context, res adminapi.Result[T]) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}
