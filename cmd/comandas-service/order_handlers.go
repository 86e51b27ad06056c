package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/ticket"
)

// placeOrderHandler godoc
// @Summary     Place an order
// @Description Lines are repriced and the total recomputed server-side. The ticket prints in the background; a print failure does not fail the order.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       order body     order.CreateOrderRequest true "Order"
// @Success     201   {object} order.Order
// @Failure     400   {object} httpx.HTTPError
// @Failure     500   {object} httpx.HTTPError
// @Router      /orders/add [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		o, err := in.Order()
		if err != nil {
			writeError(c, err)
			return
		}
		placed, err := svc.Place(c.Request.Context(), o)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}

// listOrdersHandler godoc
// @Summary     List orders, newest first
// @Tags        orders
// @Produce     json
// @Param       limit  query    int false "Page size (default 20, max 100)"
// @Param       offset query    int false "Offset"
// @Success     200    {array}  order.Order
// @Failure     500    {object} httpx.HTTPError
// @Router      /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		orders, err := svc.List(c.Request.Context(), limit, offset)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// getOrderHandler godoc
// @Summary     Get an order
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} order.Order
// @Failure     404 {object} httpx.HTTPError
// @Router      /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// orderTicketHandler godoc
// @Summary     Ticket preview of a stored order
// @Description Plain text by default; format=json returns the printer lines.
// @Tags        orders
// @Produce     plain
// @Produce     json
// @Param       id     path     string true  "Order ID"
// @Param       format query    string false "text or json"
// @Success     200    {string} string
// @Failure     404    {object} httpx.HTTPError
// @Router      /orders/{id}/ticket [get]
func orderTicketHandler(svc *order.Service, f ticket.Formatter, width int) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		writeTicket(c, f.Format(*o), width)
	}
}

// reprintOrderHandler godoc
// @Summary     Print the ticket of a stored order again
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} httpx.HTTPError
// @Failure     502 {object} httpx.HTTPError
// @Failure     503 {object} httpx.HTTPError
// @Router      /orders/{id}/print [post]
func reprintOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Reprint(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ticket printed"})
	}
}

// quoteHandler godoc
// @Summary     Price a menu selection
// @Tags        pricing
// @Accept      json
// @Produce     json
// @Param       body body     order.QuoteRequest true "Selection"
// @Success     200  {object} order.QuoteResponse
// @Failure     400  {object} httpx.HTTPError
// @Failure     404  {object} httpx.HTTPError
// @Router      /pricing/quote [post]
func quoteHandler(menus menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.QuoteRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		li, err := lineItemFor(c.Request.Context(), menus, in.AddItemRequest)
		if err != nil {
			writeError(c, err)
			return
		}
		if in.Quantity != 0 {
			li.Quantity = in.Quantity
		}
		if err := li.Reprice(); err != nil {
			writeError(c, err)
			return
		}
		unit, err := li.UnitPrice()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.QuoteResponse{Item: li, UnitPrice: unit})
	}
}

// lineItemFor builds a line item from the current menu.
func lineItemFor(ctx context.Context, menus menu.Repository, in order.AddItemRequest) (order.LineItem, error) {
	catalog, err := menus.List(ctx)
	if err != nil {
		return order.LineItem{}, err
	}
	item, ok := menu.Find(catalog, in.MenuItemID)
	if !ok {
		return order.LineItem{}, menu.ErrNotFound
	}
	return order.NewLineItem(catalog, item, in.Option, in.Extras, in.Comments)
}

func writeTicket(c *gin.Context, lines []ticket.Line, width int) {
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, lines)
		return
	}
	c.String(http.StatusOK, ticket.Render(lines, width))
}
