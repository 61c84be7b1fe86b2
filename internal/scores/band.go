package scores

// Band classifies a percentage for colouring.
type Band int

// Bands from worst to best.
const (
	BandBad Band = iota
	BandMedium
	BandGood
)

// BandFor returns good for >= 70, medium for >= 50 and bad otherwise.
func BandFor(pct int) Band {
	switch {
	case pct >= 70:
		return BandGood
	case pct >= 50:
		return BandMedium
	default:
		return BandBad
	}
}

// String returns the lowercase band name.
func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandMedium:
		return "medium"
	default:
		return "bad"
	}
}
