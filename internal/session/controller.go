// Package session owns the per-visitor storefront state: one cart ledger
// and one catalog filter, mutated only through typed commands.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JeremiasReinoso/MiFelisa/internal/cart"
	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/dispatch"
	"github.com/JeremiasReinoso/MiFelisa/internal/order"
)

type commandRouter = dispatch.Router[Kind, Controller, Command]

// Controller is the state of one browser session. Commands are applied one
// at a time in the order Dispatch is called.
type Controller struct {
	id       uuid.UUID
	catalog  *catalog.Catalog
	composer *order.Composer
	logger   *zap.Logger
	router   *commandRouter
	now      func() time.Time

	mu       sync.Mutex
	ledger   *cart.Ledger
	filter   *catalog.Filter
	lastSeen time.Time
}

// NewController creates a session with an empty cart and an "all" filter.
func NewController(id uuid.UUID, cat *catalog.Catalog, composer *order.Composer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if composer == nil {
		composer = order.NewComposer(nil)
	}
	c := &Controller{
		id:       id,
		catalog:  cat,
		composer: composer,
		logger:   logger.With(zap.String("session", id.String())),
		router:   newRouter(),
		now:      time.Now,
		ledger:   cart.NewLedger(),
		filter:   catalog.NewFilter(),
	}
	c.lastSeen = c.now()
	return c
}

func newRouter() *commandRouter {
	return dispatch.NewRouter[Kind, Controller, Command](Command.KindOf).
		On(KindAdd, handleAdd).
		On(KindIncrement, handleIncrement).
		On(KindDecrement, handleDecrement).
		On(KindRemove, handleRemove).
		On(KindClear, handleClear).
		On(KindSetCategory, handleSetCategory).
		On(KindSetSearch, handleSetSearch)
}

// ID returns the session identifier.
func (c *Controller) ID() uuid.UUID { return c.id }

// Dispatch applies one command and returns the re-rendered view. Only
// malformed commands fail; a command that has nothing to act on leaves the
// state unchanged and still succeeds.
func (c *Controller) Dispatch(cmd Command) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()
	c.logger.Info("dispatching command",
		zap.Stringer("kind", cmd.Kind),
		zap.String("product_id", cmd.ProductID),
		zap.String("key", cmd.Key),
	)
	if err := c.router.Dispatch(c, cmd); err != nil {
		c.logger.Warn("command rejected", zap.Stringer("kind", cmd.Kind), zap.Error(err))
		return View{}, err
	}
	return c.render(), nil
}

// View renders the current state without changing it.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = c.now()
	return c.render()
}

// Catalog renders every product with its visibility under the current filter.
func (c *Controller) Catalog() CatalogView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = c.now()
	return renderCatalog(c.catalog, c.filter, c.composer.Money)
}

func (c *Controller) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}
