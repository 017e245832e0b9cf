// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// NotificationSink delivers a user-facing local notification. Delivery is
// fire-and-forget; reliability of the underlying channel is out of scope.
type NotificationSink interface {
	Notify(ctx context.Context, title, body string)
}
