package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/menu"
)

// listMenuHandler godoc
// @Summary     List the menu
// @Tags        menu
// @Produce     json
// @Success     200 {array}  menu.MenuItem
// @Failure     500 {object} httpx.HTTPError
// @Router      /menu [get]
func listMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// groupedMenuHandler godoc
// @Summary     Menu by display group
// @Description Sellable groups in display order, plus the extras that can be added to any product.
// @Tags        menu
// @Produce     json
// @Success     200 {object} menu.GroupedResponse
// @Failure     500 {object} httpx.HTTPError
// @Router      /menu/groups [get]
func groupedMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, menu.Grouped(items))
	}
}

// addMenuItemHandler godoc
// @Summary     Add a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       item body     menu.MenuItem true "Menu item"
// @Success     200  {object} menu.MenuItem
// @Failure     400  {object} httpx.HTTPError
// @Failure     409  {object} httpx.HTTPError
// @Failure     500  {object} httpx.HTTPError
// @Router      /menu/add [post]
func addMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.MenuItem
		if !httpx.BindJSON(c, &in) {
			return
		}
		item, err := menu.Normalize(in)
		if err != nil {
			writeError(c, err)
			return
		}
		stored, err := repo.Add(c.Request.Context(), item)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, stored)
	}
}

// updateMenuHandler godoc
// @Summary     Replace menu items
// @Description Every stored item whose id matches one of updatedItems is replaced. Returns the whole menu.
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body     menu.UpdateRequest true "Items to replace"
// @Success     200  {array}  menu.MenuItem
// @Failure     400  {object} httpx.HTTPError
// @Failure     500  {object} httpx.HTTPError
// @Router      /menu/update [post]
func updateMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.UpdateRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		items := make([]menu.MenuItem, 0, len(in.UpdatedItems))
		for _, it := range in.UpdatedItems {
			n, err := menu.Normalize(it)
			if err != nil {
				writeError(c, err)
				return
			}
			items = append(items, n)
		}
		all, err := repo.Update(c.Request.Context(), items)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// removeMenuItemHandler godoc
// @Summary     Remove a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body     menu.RemoveRequest true "Item id"
// @Success     200  {object} map[string]string
// @Failure     400  {object} httpx.HTTPError
// @Failure     404  {object} httpx.HTTPError
// @Failure     500  {object} httpx.HTTPError
// @Router      /menu/remove [post]
func removeMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.RemoveRequest
		if !httpx.BindJSON(c, &in) {
			return
		}
		if err := repo.Remove(c.Request.Context(), in.ID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
	}
}
