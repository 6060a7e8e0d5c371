package models

// Placements holds the names awarded each rank. The three groups are the
// wire format both the TUI and the API use, but rank resolution treats them
// as one ordered list so first place always wins when a name is listed in
// more than one group.
type Placements struct {
	FirstPlace  []string `json:"firstPlace"`
	SecondPlace []string `json:"secondPlace"`
	ThirdPlace  []string `json:"thirdPlace"`
}

// Rank returns the placement for name, or nil when the name is in none of
// the groups. Groups are scanned in rank order, so a name listed twice
// resolves to the better rank.
func (p Placements) Rank(name string) *int {
	for i, group := range [3][]string{p.FirstPlace, p.SecondPlace, p.ThirdPlace} {
		for _, n := range group {
			if n == name {
				rank := i + 1
				return &rank
			}
		}
	}
	return nil
}
