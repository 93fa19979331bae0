package calibrate

// VoiceType is a coarse voice classification bucket derived from the
// measured range. It is a rule of thumb for presentation, not a
// phonetic judgement: the midpoint of the measured (unbuffered) range
// is matched against typical speaking ranges.
type VoiceType string

const (
	VoiceTypeBass         VoiceType = "bass"
	VoiceTypeBaritone     VoiceType = "baritone"
	VoiceTypeTenor        VoiceType = "tenor"
	VoiceTypeAlto         VoiceType = "alto"
	VoiceTypeMezzoSoprano VoiceType = "mezzo-soprano"
	VoiceTypeSoprano      VoiceType = "soprano"
	VoiceTypeUnknown      VoiceType = "unknown"
)

// ClassifyVoiceType buckets a measured pitch range by its midpoint.
// These are rough thresholds for typical speaking voices.
func ClassifyVoiceType(minPitch, maxPitch float64) VoiceType {
	if minPitch <= 0 || maxPitch < minPitch {
		return VoiceTypeUnknown
	}

	midpoint := (minPitch + maxPitch) / 2

	switch {
	case midpoint < 110:
		return VoiceTypeBass
	case midpoint < 150:
		return VoiceTypeBaritone
	case midpoint < 200:
		return VoiceTypeTenor
	case midpoint < 260:
		return VoiceTypeAlto
	case midpoint < 330:
		return VoiceTypeMezzoSoprano
	default:
		return VoiceTypeSoprano
	}
}
