package chess

import "time"

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// PGNDateLayout is the time layout of the PGN Date tag.
const PGNDateLayout = "2006.01.02"

// Metadata holds the PGN tags of a game record, keyed by tag name.
type Metadata map[string]string

// Get returns a tag value, or empty string if not present.
func (m Metadata) Get(name string) string {
	return m[name]
}

// WithDefaults returns a copy of m in which every empty seven-tag-roster
// entry is filled in. The Date default is taken from now.
func (m Metadata) WithDefaults(now time.Time) Metadata {
	out := make(Metadata, len(m)+len(SevenTagRoster))
	for k, v := range m {
		out[k] = v
	}
	defaults := map[string]string{
		"Event":  "Casual Game",
		"Site":   "Local",
		"Date":   now.Format(PGNDateLayout),
		"Round":  "1",
		"White":  "White",
		"Black":  "Black",
		"Result": "*",
	}
	for tag, value := range defaults {
		if out[tag] == "" {
			out[tag] = value
		}
	}
	return out
}
