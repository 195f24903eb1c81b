// Package core provides the foundational domain types and collaborator
// contracts used by Convoy. It defines the core abstractions for:
//
//   - Agents (opaque workers producing text or a chunk stream from a task)
//   - Classifiers (agent selection for an incoming message)
//   - Ledgers (append-only per-thread conversation history)
//   - Messages (immutable per-thread conversation records)
//   - Results and the typed error taxonomy shared by all orchestrators
//
// The package intentionally keeps implementation concerns (orchestration
// strategies, concrete agents, storage backends) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
