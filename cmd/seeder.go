package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dispatch/internal/adapters/in/seed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// Seeder loads seed restaurants and replays scripted steps through the
// command handlers, writing a transcript to out.
type Seeder struct {
	onboard     commands.OnboardRestaurantCommandHandler
	addItem     commands.AddMenuItemCommandHandler
	updatePrice commands.UpdateMenuItemPriceCommandHandler
	place       commands.PlaceOrderCommandHandler
	complete    commands.CompleteOrderCommandHandler
	next        commands.CompleteNextOrderCommandHandler
	setStrategy commands.SetSelectionStrategyCommandHandler
	strategies  *services.StrategyRegistry
	status      StatusPrinter
	out         io.Writer
}

func (c *CompositionRoot) CreateSeeder(out io.Writer) *Seeder {
	return &Seeder{
		onboard:     c.CreateOnboardRestaurantCommandHandler(),
		addItem:     c.CreateAddMenuItemCommandHandler(),
		updatePrice: c.CreateUpdateMenuItemPriceCommandHandler(),
		place:       c.CreatePlaceOrderCommandHandler(),
		complete:    c.CreateCompleteOrderCommandHandler(),
		next:        c.CreateCompleteNextOrderCommandHandler(),
		setStrategy: c.CreateSetSelectionStrategyCommandHandler(),
		strategies:  c.strategies,
		status:      c.CreateStatusPrinter(out),
		out:         out,
	}
}

// LoadRestaurants onboards every seed restaurant with its menu.
// It stops at the first failure.
func (s *Seeder) LoadRestaurants(ctx context.Context, file seed.Seed) error {
	fmt.Fprintln(s.out, "=== Onboarding Restaurants ===")
	for _, r := range file.Restaurants {
		if err := s.onboardRestaurant(ctx, r.Name, r.MaxOrders, r.Rating); err != nil {
			return fmt.Errorf("onboard %s: %w", r.Name, err)
		}

		for _, item := range r.Menu {
			if err := s.addMenuItem(ctx, r.Name, item.Item, item.Price); err != nil {
				return fmt.Errorf("add %s to %s: %w", item.Item, r.Name, err)
			}
		}
	}
	return nil
}

// RunSteps replays steps in order. A failing step is reported and the script
// goes on; only a cancelled context stops it.
func (s *Seeder) RunSteps(ctx context.Context, steps []seed.Step) (failed int, err error) {
	for _, step := range steps {
		if err = ctx.Err(); err != nil {
			return failed, err
		}

		if step.Section != "" {
			fmt.Fprintf(s.out, "\n=== %s ===\n", step.Section)
		}

		if stepErr := s.runStep(ctx, step); stepErr != nil {
			failed++
			fmt.Fprintf(s.out, "Failed (%s): %v\n", step.Action, stepErr)
		}
	}
	return failed, nil
}

func (s *Seeder) runStep(ctx context.Context, step seed.Step) error {
	switch step.Action {
	case seed.ActionOnboardRestaurant:
		return s.onboardRestaurant(ctx, step.Name, step.MaxOrders, step.Rating)
	case seed.ActionAddMenuItem:
		return s.addMenuItem(ctx, step.Restaurant, step.Item, step.Price)
	case seed.ActionUpdateMenuItemPrice:
		return s.updateMenuItemPrice(ctx, step.Restaurant, step.Item, step.Price)
	case seed.ActionPlaceOrder:
		return s.placeOrder(ctx, step)
	case seed.ActionCompleteOrder:
		return s.completeOrder(ctx, step.OrderID)
	case seed.ActionCompleteNextOrder:
		return s.next.Handle(ctx, commands.NewCompleteNextOrderCommand())
	case seed.ActionSetStrategy:
		return s.selectStrategy(ctx, step.Strategy)
	case seed.ActionShowStatus:
		return s.status.Print(ctx)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

func (s *Seeder) onboardRestaurant(ctx context.Context, name string, maxOrders int, rating float64) error {
	cmd, err := commands.NewOnboardRestaurantCommand(name, maxOrders, rating)
	if err != nil {
		return err
	}
	if err = s.onboard.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Restaurant onboarded: %s\n", name)
	return nil
}

func (s *Seeder) addMenuItem(ctx context.Context, restaurantName, item, price string) error {
	amount, err := seed.ParsePrice(price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddMenuItemCommand(restaurantName, item, amount)
	if err != nil {
		return err
	}
	if err = s.addItem.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Menu item added to %s: %s - %s\n", restaurantName, item, amount)
	return nil
}

func (s *Seeder) updateMenuItemPrice(ctx context.Context, restaurantName, item, price string) error {
	amount, err := seed.ParsePrice(price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemPriceCommand(restaurantName, item, amount)
	if err != nil {
		return err
	}
	if err = s.updatePrice.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Menu item updated in %s: %s - %s\n", restaurantName, item, amount)
	return nil
}

func (s *Seeder) placeOrder(ctx context.Context, step seed.Step) error {
	var strategy services.SelectionStrategy
	if step.Strategy != "" {
		found, err := s.strategies.Get(step.Strategy)
		if err != nil {
			return err
		}
		strategy = found
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), step.Customer, step.Items, strategy)
	if err != nil {
		return err
	}

	placed, err := s.place.Handle(ctx, cmd)
	if errors.Is(err, services.ErrNoEligibleRestaurant) || errors.Is(err, services.ErrRestaurantNotSelected) {
		fmt.Fprintf(s.out, "Order %d for %s rejected\n", placed.ID, placed.Customer)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Order %d assigned to %s (%s). Total cost: %s\n",
		placed.ID, placed.Restaurant, placed.Strategy, placed.TotalCost)
	return nil
}

func (s *Seeder) completeOrder(ctx context.Context, id int) error {
	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.complete.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Order %d marked as completed\n", id)
	return nil
}

func (s *Seeder) selectStrategy(ctx context.Context, name string) error {
	strategy, err := s.strategies.Get(name)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetSelectionStrategyCommand(strategy)
	if err != nil {
		return err
	}
	if err = s.setStrategy.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Default selection strategy: %s\n", name)
	return nil
}
