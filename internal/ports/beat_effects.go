package ports

// BeatKind distinguishes how a beat was decided.
type BeatKind string

const (
	// BeatExplicit marks a beat flagged explicitly by the upstream analyzer.
	BeatExplicit BeatKind = "explicit"

	// BeatProjected marks a beat synthesized from tempo/phase evidence.
	BeatProjected BeatKind = "projected"
)

// BeatEffects receives beat notifications for a zone. The tick processor
// calls OnBeat at most once per zone per tick, and only when the projected
// intensity clears the configured threshold.
type BeatEffects interface {
	OnBeat(zoneID string, kind BeatKind, intensity float64)
}
