package terrain

// Season enumerates the four seasons used by the climate layers.
type Season uint8

const (
	SeasonWinter Season = iota
	SeasonSpring
	SeasonSummer
	SeasonFall
)

// Seasons returns all seasons in their canonical order.
func Seasons() []Season {
	return []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}
}

// String returns the lowercase season name.
func (s Season) String() string {
	switch s {
	case SeasonWinter:
		return "winter"
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonFall:
		return "fall"
	default:
		return "unknown"
	}
}
