// Package domain contains the core domain entities and value objects for vizbridge.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (rendering, file system, logging)
// and contains only pure business logic.
//
// # Entities
//
//   - [Envelope]: A parsed, typed representation of one inbound message
//   - [EntityDelta]: One entity's normalized update within a bulk update
//   - [EntityUpdateCommand]: A world-space render command, dispatch-and-forget
//   - [AudioFrameState]: The per-zone audio summary published after each tick
//   - [Stats]: Monotonic pipeline counters with atomic access
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
