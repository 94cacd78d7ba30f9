package session

import (
	"go.uber.org/zap"

	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/dispatch"
)

func handleAdd(c *Controller, cmd Command) error {
	product, ok := c.catalog.Product(cmd.ProductID)
	if err := dispatch.FirstError(
		dispatch.RequireNonEmpty(cmd.ProductID, dispatch.ErrMsgProductRequired),
		dispatch.RequireFound(ok, dispatch.ErrMsgProductNotFound),
	); err != nil {
		return err
	}

	price, ok := catalog.ResolvePrice(product, cmd.Variant)
	if !ok {
		c.logger.Debug("add skipped: no priced variant selected",
			zap.String("product_id", product.ID),
			zap.String("variant", cmd.Variant),
		)
		return nil
	}

	variant := ""
	if product.HasVariants() {
		variant = cmd.Variant
	}
	c.ledger.Add(catalog.LineKey(product, variant), price)
	return nil
}

func handleIncrement(c *Controller, cmd Command) error {
	return changeQuantity(c, cmd, +1)
}

func handleDecrement(c *Controller, cmd Command) error {
	return changeQuantity(c, cmd, -1)
}

func changeQuantity(c *Controller, cmd Command, delta int) error {
	if err := dispatch.RequireNonEmpty(cmd.Key, dispatch.ErrMsgKeyRequired); err != nil {
		return err
	}
	if !c.ledger.ChangeQuantity(cmd.Key, delta) {
		c.logger.Debug("quantity change skipped: line not in cart", zap.String("key", cmd.Key))
	}
	return nil
}

func handleRemove(c *Controller, cmd Command) error {
	if err := dispatch.RequireNonEmpty(cmd.Key, dispatch.ErrMsgKeyRequired); err != nil {
		return err
	}
	if !c.ledger.Remove(cmd.Key) {
		c.logger.Debug("remove skipped: line not in cart", zap.String("key", cmd.Key))
	}
	return nil
}

func handleClear(c *Controller, _ Command) error {
	c.ledger.Clear()
	return nil
}

func handleSetCategory(c *Controller, cmd Command) error {
	c.filter.SetCategory(cmd.Category)
	return nil
}

func handleSetSearch(c *Controller, cmd Command) error {
	c.filter.SetSearch(cmd.Search)
	return nil
}
