// Package agent contains first-class worker implementations satisfying
// core.Agent. The package focuses on two concerns:
//
//  1. Identity plumbing shared by all workers (BaseAgent)
//  2. Concrete workers: a model-backed conversational agent (LLMAgent) and a
//     plain-function adapter (FuncAgent)
//
// Design principles:
//   - No hidden global state; models and names are injected at construction
//   - Streaming and blocking invocation always produce identical text
//   - Backend failures surface as *core.AgentError for uniform handling
//
// Orchestration strategies, classification and ledger persistence live in
// their respective packages to avoid cyclic deps.
package agent
