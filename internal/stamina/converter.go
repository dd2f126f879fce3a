package stamina

import (
	"errors"
	"math"
	"regexp"
)

var (
	ErrInvalidUserID = errors.New("invalid userID format")
	ErrInvalidScore  = errors.New("stamina score out of range")
)

// Color is the zone color band derived from a stamina score.
type Color string

const (
	ColorBlue         Color = "blue"
	ColorGreen        Color = "green"
	ColorGreenYellow  Color = "green-yellow"
	ColorYellow       Color = "yellow"
	ColorYellowOrange Color = "yellow-orange"
	ColorOrange       Color = "orange"
	ColorRed          Color = "red"
)

// ValidationMode selects the userID policy for a deployment.
type ValidationMode string

const (
	// ModePermissive accepts alphanumeric IDs plus '.', '_', '-', longer than 5 chars.
	ModePermissive ValidationMode = "permissive"
	// ModeStrict accepts only the Apple-style shape: 6 digits, 32 hex chars, 4 digits.
	ModeStrict ValidationMode = "strict"
)

var (
	permissiveUserID = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	strictUserID     = regexp.MustCompile(`^\d{6}\.[a-f0-9]{32}\.\d{4}$`)
)

// hrBand maps the half-open bpm interval [lo, hi) to one stamina score.
type hrBand struct {
	lo, hi int
	score  int
}

// Heart-rate bands are disjoint and cover [0, 205); anything outside
// resolves to the 0 sentinel (unknown), not an error.
var hrBands = []hrBand{
	{0, 60, 100}, {60, 64, 99}, {64, 68, 98}, {68, 72, 97}, {72, 76, 96},
	{76, 80, 95}, {80, 84, 94}, {84, 88, 93}, {88, 92, 92}, {92, 96, 91},
	{96, 99, 90}, {99, 100, 89}, {100, 104, 88}, {104, 106, 87}, {106, 108, 86},
	{108, 110, 85}, {110, 112, 84}, {112, 114, 83}, {114, 116, 82}, {116, 120, 81},
	{120, 121, 80}, {121, 123, 79}, {123, 125, 78}, {125, 126, 77},
	{126, 127, 76}, {127, 129, 75}, {129, 131, 74}, {131, 133, 72},
	{133, 135, 70}, {135, 137, 68}, {137, 141, 67}, {141, 143, 65},
	{143, 145, 64}, {145, 147, 62}, {147, 149, 61}, {149, 151, 59},
	{151, 153, 58}, {153, 155, 57}, {155, 157, 55}, {157, 159, 54},
	{159, 161, 53}, {161, 163, 51}, {163, 165, 49}, {165, 167, 47},
	{167, 169, 45}, {169, 171, 41}, {171, 173, 39}, {173, 175, 35},
	{175, 177, 33}, {177, 179, 29}, {179, 181, 27}, {181, 183, 25},
	{183, 185, 23}, {185, 187, 21}, {187, 189, 19}, {189, 191, 17},
	{191, 193, 15}, {193, 195, 13}, {195, 197, 11}, {197, 205, 10},
}

var scoreByBPM = buildScoreMap()

func buildScoreMap() map[int]int {
	m := make(map[int]int, 205)
	for _, b := range hrBands {
		for bpm := b.lo; bpm < b.hi; bpm++ {
			m[bpm] = b.score
		}
	}
	return m
}

// ScoreFromHeartRate converts a raw heart-rate measurement into a
// stamina score. The bpm is rounded to the nearest integer before the
// table lookup. Lower heart rate means more reserve, so the score
// decreases as bpm climbs.
func ScoreFromHeartRate(bpm float64) int {
	return scoreByBPM[int(math.Round(bpm))]
}

// ColorFromScore maps a stamina score onto its zone color. Thresholds
// are evaluated high to low; each band is inclusive on its lower bound.
func ColorFromScore(score int) Color {
	switch {
	case score >= 91:
		return ColorBlue
	case score >= 86:
		return ColorGreen
	case score >= 76:
		return ColorGreenYellow
	case score >= 51:
		return ColorYellow
	case score >= 40:
		return ColorYellowOrange
	case score >= 30:
		return ColorOrange
	default:
		return ColorRed
	}
}

// ValidateUserID checks id against the deployment's validation mode.
func ValidateUserID(id string, mode ValidationMode) error {
	switch mode {
	case ModeStrict:
		if !strictUserID.MatchString(id) {
			return ErrInvalidUserID
		}
	default:
		if len(id) <= 5 || !permissiveUserID.MatchString(id) {
			return ErrInvalidUserID
		}
	}
	return nil
}

// ValidateScore checks a pre-computed stamina score supplied by the
// caller instead of derived from raw heart rate.
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return ErrInvalidScore
	}
	return nil
}
