package domain

type Verdict int

const (
	LikelyLegit Verdict = iota
	PossiblySmurf
	LikelySmurf
	AlmostCertainlySmurf
)

func (v Verdict) String() string {
	switch v {
	case AlmostCertainlySmurf:
		return "Almost Certainly Smurf"
	case LikelySmurf:
		return "Likely Smurf"
	case PossiblySmurf:
		return "Possibly Smurf"
	default:
		return "Likely Legit"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
