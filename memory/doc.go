// Package memory contains concrete Ledger implementations. The ledger
// interface and Message type reside in the core package. Import
// github.com/convoy-ai/convoy/core and depend on core.Ledger in your code;
// select an implementation (like the in-memory ledger below) at wiring time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends (SQL stores, append-only logs, etc.) to be added without
// introducing dependency cycles.
package memory
