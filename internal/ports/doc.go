// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// pipeline needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [RenderSink]: Applies batched entity update commands to the renderer
//   - [ZoneRegistry] / [Zone]: Resolves zone ids to coordinate mappings
//   - [BeatEffects]: Receives projected beat notifications
//   - [AudioStatePublisher]: Receives per-zone audio frame summaries
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (renderer bridge, static zone tables, zerolog, etc.).
//
// Sink implementations are invoked synchronously from the tick loop and
// must return quickly; anything slow belongs on the implementation's own
// goroutine.
package ports
