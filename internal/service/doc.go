// Package service contains the application use cases: account registration
// and sessions, the server-side daily draw of record, and the client-side
// draw orchestrator that prefers the remote ledger and falls back to the
// local one. Services coordinate domain objects and the stores defined in
// internal/store, and return sentinel errors the API layer maps to HTTP
// status codes.
package service
