package policy

import "strings"

// InferPillar guesses the primary WEFE pillar for a policy. Effect categories
// take priority over title keywords; anything unclassifiable lands in
// ecosystems, the broadest bucket.
func InferPillar(p Policy) string {
	for _, effects := range [][]Effect{p.Synergies, p.TradeOffs} {
		for _, e := range effects {
			if pillar := categoryPillar(e.Category); pillar != "" {
				return pillar
			}
		}
	}

	title := strings.ToLower(p.Title)
	switch {
	case strings.Contains(title, "water"):
		return "water"
	case strings.Contains(title, "energy"), strings.Contains(title, "renewable"):
		return "energy"
	case strings.Contains(title, "agri"), strings.Contains(title, "food"), strings.Contains(title, "farm"):
		return "food"
	case strings.Contains(title, "eco"), strings.Contains(title, "biodiversity"),
		strings.Contains(title, "green"), strings.Contains(title, "marine"),
		strings.Contains(title, "climate"):
		return "ecosystems"
	}
	return "ecosystems"
}

func categoryPillar(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	switch {
	case strings.HasPrefix(c, "water"):
		return "water"
	case strings.HasPrefix(c, "energy"):
		return "energy"
	case strings.HasPrefix(c, "food"), strings.Contains(c, "agri"):
		return "food"
	case strings.Contains(c, "ecosystem"), strings.Contains(c, "biodiversity"),
		strings.Contains(c, "land"), strings.Contains(c, "marine"),
		strings.Contains(c, "climate"):
		return "ecosystems"
	}
	return ""
}
