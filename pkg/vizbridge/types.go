package vizbridge

import (
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
)

// Re-export domain types for embedding applications.
type (
	// Envelope is a parsed, typed inbound message.
	Envelope = domain.Envelope

	// EntityDelta is one entity's normalized update within a bulk update.
	EntityDelta = domain.EntityDelta

	// EntityUpdateCommand is a world-space render command.
	EntityUpdateCommand = domain.EntityUpdateCommand

	// WorldPosition is a point in renderer world space.
	WorldPosition = domain.WorldPosition

	// AudioFrameState is the per-zone audio summary published each tick.
	AudioFrameState = domain.AudioFrameState

	// StatsSnapshot is a read-only view of the pipeline counters.
	StatsSnapshot = domain.StatsSnapshot
)

// Re-export collaborator ports so adapters can be supplied from outside.
type (
	// RenderSink places visual objects in the world.
	RenderSink = ports.RenderSink

	// Zone exposes one zone's coordinate mapping and render mode.
	Zone = ports.Zone

	// ZoneRegistry resolves zone identifiers.
	ZoneRegistry = ports.ZoneRegistry

	// BeatEffects receives beat notifications.
	BeatEffects = ports.BeatEffects

	// BeatKind distinguishes explicit from projected beats.
	BeatKind = ports.BeatKind

	// AudioStatePublisher receives per-zone audio frame summaries.
	AudioStatePublisher = ports.AudioStatePublisher

	// Logger is the structured logging abstraction from pkg/log.
	Logger = log.Logger
)

// Beat kinds re-exported from the ports package.
const (
	BeatExplicit  = ports.BeatExplicit
	BeatProjected = ports.BeatProjected
)

// Message type tags re-exported from the domain package.
const (
	TypeBulkUpdate   = domain.TypeBulkUpdate
	TypeEntityUpdate = domain.TypeEntityUpdate
	TypeClearZone    = domain.TypeClearZone
)

// Sentinel errors re-exported for errors.Is checks.
var (
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrNotRunning      = domain.ErrNotRunning
	ErrShutdownTimeout = domain.ErrShutdownTimeout
	ErrInvalidConfig   = domain.ErrInvalidConfig
	ErrUnknownZone     = domain.ErrUnknownZone
	ErrUnknownCommand  = domain.ErrUnknownCommand
)
