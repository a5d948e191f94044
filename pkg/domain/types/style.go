package types

import "github.com/m-mizutani/goerr/v2"

// StyleKey identifies a base bridge style in the profile catalog
type StyleKey string

const (
	StyleAztec     StyleKey = "aztec"
	StyleZama      StyleKey = "zama"
	StyleSoundness StyleKey = "soundness"
)

// ErrUnknownStyle is returned when a style key does not resolve in the catalog
var ErrUnknownStyle = goerr.New("unknown bridge style")

// AllStyleKeys returns all valid style keys in catalog order
func AllStyleKeys() []StyleKey {
	return []StyleKey{
		StyleAztec,
		StyleZama,
		StyleSoundness,
	}
}

// IsValid checks if the style key is valid
func (s StyleKey) IsValid() bool {
	switch s {
	case StyleAztec,
		StyleZama,
		StyleSoundness:
		return true
	default:
		return false
	}
}

// String returns the string representation of the style key
func (s StyleKey) String() string {
	return string(s)
}

// ParseStyle parses a string into a StyleKey. Unknown keys are rejected
// before any scoring happens.
func ParseStyle(s string) (StyleKey, error) {
	key := StyleKey(s)
	if !key.IsValid() {
		return "", goerr.Wrap(ErrUnknownStyle, "style must be one of: aztec, zama, soundness", goerr.V("style", s))
	}
	return key, nil
}
