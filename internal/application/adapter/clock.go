// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current instant so window resolution and reminder
// scheduling stay testable.
type Clock interface {
	Now() time.Time
}
