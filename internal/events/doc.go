// Package events provides a minimal in-process event bus. Services publish
// domain events without knowing who consumes them; handlers subscribe for
// side effects like audit logging.
package events
