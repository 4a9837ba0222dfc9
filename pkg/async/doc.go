// Package async provides a generic Future and a bounded worker Pool with an
// explicit submit-and-await contract.
//
// Submit places a task on the Pool's queue and returns immediately with a
// *Future. The caller waits with Await, or with AwaitContext to stop waiting
// when its own context ends. The Pool owns a fixed set of goroutines, so a
// burst of submissions never spawns more than the configured number of
// concurrent tasks; submitters block while the queue is full.
//
// # Usage
//
//	pool := async.NewPool(8, 64)
//	defer pool.Close()
//
//	future := async.Submit(ctx, pool, msg, func(ctx context.Context, m Message) (Result, error) {
//	    return sender.Send(ctx, m)
//	})
//	res, err := future.AwaitContext(ctx)
//
// # Error Handling
//
//   - ErrPoolClosed: Submit was called after Close
//   - ErrTaskPanicked: the task panicked; the worker survives
//   - context errors: the submit context ended before the task ran, or
//     AwaitContext's context ended first
package async
