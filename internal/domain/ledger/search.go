package ledger

import (
	"sort"
	"strings"
)

// Search filters clients by a case-insensitive substring match against
// name, document or phone (OR semantics). Empty or whitespace-only text
// returns all clients. The result is always sorted by name ascending,
// ties broken by id ascending.
func Search(clients []Client, text string) []Client {
	needle := strings.ToLower(strings.TrimSpace(text))

	var matched []Client
	if needle == "" {
		matched = append(matched, clients...)
	} else {
		for _, c := range clients {
			if matches(c, needle) {
				matched = append(matched, c)
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}

func matches(c Client, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	if c.Document != "" && strings.Contains(strings.ToLower(c.Document), needle) {
		return true
	}
	if c.Phone != "" && strings.Contains(strings.ToLower(c.Phone), needle) {
		return true
	}
	return false
}
