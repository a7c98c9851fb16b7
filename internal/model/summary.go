package model

// Summary aggregates the current entries.
// When Empty is set the other fields are zero and carry no meaning.
type Summary struct {
	Total   int  `json:"total"`
	Packed  int  `json:"packed"`
	Percent int  `json:"percent"`
	Empty   bool `json:"empty"`
}

// Complete reports the 100% state. Percent is rounded, so a very long list
// can reach it with one entry still unpacked.
func (s Summary) Complete() bool {
	return !s.Empty && s.Percent == 100
}
