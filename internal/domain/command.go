package domain

// WorldPosition is a point in renderer world space.
type WorldPosition struct {
	X float64
	Y float64
	Z float64
}

// Pivot is the rotation/scaling origin of a render primitive, expressed in
// the primitive's own unit space.
type Pivot struct {
	X float64
	Y float64
	Z float64
}

// Transform describes how a render primitive is scaled and rotated around
// its pivot.
type Transform struct {
	Scale           float64
	RotationDegrees float64
	Pivot           Pivot
}

// EntityUpdateCommand is one ready-to-apply render command. Commands are
// produced fresh every tick from the latest delta for an entity and have no
// lifecycle beyond the dispatch call that carries them.
type EntityUpdateCommand struct {
	ID        string
	Position  WorldPosition
	Transform Transform

	// Optional pass-through fields; nil when the producing delta omitted them.
	Brightness         *int
	Glow               *bool
	InterpolationTicks *int
}
