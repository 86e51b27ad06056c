package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/ticket"
)

// createDraftHandler godoc
// @Summary     Open an empty draft
// @Tags        drafts
// @Produce     json
// @Success     201 {object} order.DraftView
// @Router      /drafts [post]
func createDraftHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, order.ViewOf(drafts.Create()))
	}
}

// getDraftHandler godoc
// @Summary     Get a draft with its totals
// @Tags        drafts
// @Produce     json
// @Param       id  path     string true "Draft ID"
// @Success     200 {object} order.DraftView
// @Failure     404 {object} httpx.HTTPError
// @Router      /drafts/{id} [get]
func getDraftHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := drafts.Get(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// updateDraftHandler godoc
// @Summary     Change customer data, payment or discount
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Param       id   path     string                   true "Draft ID"
// @Param       body body     order.UpdateDraftRequest true "Fields to change"
// @Success     200  {object} order.DraftView
// @Failure     400  {object} httpx.HTTPError
// @Failure     404  {object} httpx.HTTPError
// @Router      /drafts/{id} [put]
func updateDraftHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.UpdateDraftRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		d, err := drafts.Update(c.Param("id"), func(d *order.Draft) error {
			in.Apply(d)
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// deleteDraftHandler godoc
// @Summary     Discard a draft
// @Tags        drafts
// @Param       id  path string true "Draft ID"
// @Success     204
// @Failure     404 {object} httpx.HTTPError
// @Router      /drafts/{id} [delete]
func deleteDraftHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := drafts.Delete(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// resetDraftHandler godoc
// @Summary     Clear a draft
// @Description Drops customer data, payment, discount and every line. The draft keeps its id.
// @Tags        drafts
// @Produce     json
// @Param       id  path     string true "Draft ID"
// @Success     200 {object} order.DraftView
// @Failure     404 {object} httpx.HTTPError
// @Router      /drafts/{id}/reset [post]
func resetDraftHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := drafts.Update(c.Param("id"), func(d *order.Draft) error {
			d.Reset()
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// addDraftItemHandler godoc
// @Summary     Add a menu selection to a draft
// @Description An equal line (same product, option, extras and comments) grows by one unit instead of adding a new line.
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Param       id   path     string               true "Draft ID"
// @Param       body body     order.AddItemRequest true "Selection"
// @Success     200  {object} order.DraftView
// @Failure     400  {object} httpx.HTTPError
// @Failure     404  {object} httpx.HTTPError
// @Router      /drafts/{id}/items [post]
func addDraftItemHandler(drafts *order.DraftStore, menus menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.AddItemRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		li, err := lineItemFor(c.Request.Context(), menus, in)
		if err != nil {
			writeError(c, err)
			return
		}
		d, err := drafts.Update(c.Param("id"), func(d *order.Draft) error {
			_, err := d.AddItem(li)
			return err
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// setDraftItemQuantityHandler godoc
// @Summary     Set the quantity of a draft line
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Param       id    path     string                true "Draft ID"
// @Param       index path     int                   true "Line index"
// @Param       body  body     order.QuantityRequest true "Quantity"
// @Success     200   {object} order.DraftView
// @Failure     400   {object} httpx.HTTPError
// @Failure     404   {object} httpx.HTTPError
// @Router      /drafts/{id}/items/{index} [put]
func setDraftItemQuantityHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			writeError(c, order.ErrIndexOutOfRange)
			return
		}
		var in order.QuantityRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		d, err := drafts.Update(c.Param("id"), func(d *order.Draft) error {
			_, err := d.SetQuantity(index, in.Quantity)
			return err
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// removeDraftItemHandler godoc
// @Summary     Remove a draft line
// @Tags        drafts
// @Produce     json
// @Param       id    path     string true "Draft ID"
// @Param       index path     int    true "Line index"
// @Success     200   {object} order.DraftView
// @Failure     400   {object} httpx.HTTPError
// @Failure     404   {object} httpx.HTTPError
// @Router      /drafts/{id}/items/{index} [delete]
func removeDraftItemHandler(drafts *order.DraftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			writeError(c, order.ErrIndexOutOfRange)
			return
		}
		d, err := drafts.Update(c.Param("id"), func(d *order.Draft) error {
			_, err := d.RemoveItem(index)
			return err
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ViewOf(d))
	}
}

// draftTicketHandler godoc
// @Summary     Ticket preview of a draft
// @Tags        drafts
// @Produce     plain
// @Produce     json
// @Param       id     path     string true  "Draft ID"
// @Param       format query    string false "text or json"
// @Success     200    {string} string
// @Failure     404    {object} httpx.HTTPError
// @Router      /drafts/{id}/ticket [get]
func draftTicketHandler(drafts *order.DraftStore, f ticket.Formatter, width int) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := drafts.Get(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		o := d.Order()
		o.TotalPrice = order.ViewOf(d).Total
		writeTicket(c, f.Format(o), width)
	}
}

// submitDraftHandler godoc
// @Summary     Place the order held by a draft
// @Description On success the draft is discarded. If the order is rejected the draft stays open.
// @Tags        drafts
// @Produce     json
// @Param       id  path     string true "Draft ID"
// @Success     201 {object} order.Order
// @Failure     400 {object} httpx.HTTPError
// @Failure     404 {object} httpx.HTTPError
// @Failure     500 {object} httpx.HTTPError
// @Router      /drafts/{id}/submit [post]
func submitDraftHandler(drafts *order.DraftStore, svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := drafts.Take(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		placed, err := svc.Place(c.Request.Context(), d.Order())
		if err != nil {
			drafts.Put(d)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}
