package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smart-table-api/cart"
	"smart-table-api/menu"
	"smart-table-api/models"
	"smart-table-api/statemachine"
	"smart-table-api/store"
	"smart-table-api/ws"
)

// API carries the collaborators every handler needs: the account
// database, the immutable menu catalog, per-table carts, the shared
// order store and the event hub.
type API struct {
	DB     *gorm.DB
	Menu   *menu.Catalog
	Carts  *cart.Sessions
	Orders *store.Store
	Hub    *ws.Hub
}

func New(db *gorm.DB, catalog *menu.Catalog, carts *cart.Sessions, orders *store.Store, hub *ws.Hub) *API {
	return &API{DB: db, Menu: catalog, Carts: carts, Orders: orders, Hub: hub}
}

// statusFor maps store and lifecycle errors onto HTTP codes. Anything
// unrecognized is a persistence failure and retryable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, statemachine.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrUnknownTable),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidRating),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrUnknownPayment):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
