// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes implementations of circuit breakers and retry logic to keep the
// catalog API and the lifecycle sweeper stable when the store or a
// notification webhook misbehaves.
//
// The package supports:
//   - Circuit breakers for the document store and notification webhooks
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.DBConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return queryStore()
//	})
//
//	retryConfig := retry.DBConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return performOperation()
//	})
package resilience
