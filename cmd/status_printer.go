package cmd

import (
	"context"
	"fmt"
	"io"

	"dispatch/internal/core/application/usecases/queries"
)

// StatusPrinter renders restaurant and order status tables.
type StatusPrinter struct {
	restaurants queries.GetRestaurantsQueryHandler
	orders      queries.GetOrdersQueryHandler
	out         io.Writer
}

func (c *CompositionRoot) CreateStatusPrinter(out io.Writer) StatusPrinter {
	return StatusPrinter{
		restaurants: c.CreateGetRestaurantsQueryHandler(),
		orders:      c.CreateGetOrdersQueryHandler(),
		out:         out,
	}
}

// PrintRestaurants writes one line per restaurant, in onboarding order.
func (p StatusPrinter) PrintRestaurants(ctx context.Context) error {
	restaurants, err := p.restaurants.Handle(ctx, queries.NewGetRestaurantsQuery())
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\n=== Restaurant Status ===")
	for _, r := range restaurants {
		fmt.Fprintf(p.out, "%s - Orders: %d/%d, Rating: %.1f\n", r.Name, r.CurrentOrders, r.MaxOrders, r.Rating)
	}
	return nil
}

// PrintOrders writes one line per order, in id order.
func (p StatusPrinter) PrintOrders(ctx context.Context) error {
	query, err := queries.NewGetOrdersQuery()
	if err != nil {
		return err
	}

	orders, err := p.orders.Handle(ctx, query)
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\n=== Order Status ===")
	for _, o := range orders {
		line := fmt.Sprintf("Order %d - %s - Status: %s", o.ID, o.Customer, o.Status)
		if o.Restaurant != "" {
			line += " - Restaurant: " + o.Restaurant
		}
		fmt.Fprintln(p.out, line)
	}
	return nil
}

// Print writes both tables.
func (p StatusPrinter) Print(ctx context.Context) error {
	if err := p.PrintRestaurants(ctx); err != nil {
		return err
	}
	return p.PrintOrders(ctx)
}
