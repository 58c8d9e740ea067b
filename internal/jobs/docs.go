// Package jobs provides scheduled background tasks that drive the dispatch
// simulation.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderPlacementJob - places the next order from an OrderFeed on every tick
// 2. OrderCompletionJob - completes the accepted order with the lowest id on every tick
//
// # Usage
//
//	feed, err := jobs.NewScriptedOrderFeed([]jobs.ScriptedOrder{
//		{Customer: "Ashwin", Items: map[string]int{"Idli": 3, "Dosa": 1}},
//	}, registry)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(placeOrderHandler, completeNextOrderHandler, feed,
//		jobs.Schedules{Placement: "* * * * * *", Completion: "*/2 * * * * *"}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field.
//
// # Error Handling
//
// Rejected orders and an empty completion queue are expected outcomes and are
// not logged as failures. Anything else is logged at error level; the job
// keeps running.
package jobs
