// Package timeline builds the project timeline graph from execution records:
// one lane per task name, one node per task occurrence, positioned by
// time of day and sized by actual duration. The output shape follows the
// node/edge convention the dashboard's flow renderer consumes.
package timeline

// Position is a node's layout coordinate in presentation units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the display payload of a node. Header and lane-label nodes use
// Label/Stats/Count; occurrence nodes fill the remaining fields.
type NodeData struct {
	Label      string  `json:"label"`
	Stats      string  `json:"stats,omitempty"`
	Count      string  `json:"count,omitempty"`
	Poste      string  `json:"poste,omitempty"`
	Pieces     string  `json:"pieces,omitempty"`
	Duration   string  `json:"duration,omitempty"`
	Time       string  `json:"time,omitempty"`
	Date       string  `json:"date,omitempty"`
	Delay      string  `json:"delay,omitempty"`
	HasDelay   bool    `json:"hasDelay"`
	Width      float64 `json:"width,omitempty"`
	Efficiency float64 `json:"efficiency,omitempty"`
}

type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type,omitempty"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
}

// Edge connects two chronologically consecutive occurrence nodes. Animated
// marks an edge whose either endpoint carries a delay.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Animated bool   `json:"animated"`
}

// Graph is the complete timeline payload. AvailableDates always reflects the
// unfiltered record set so the date picker stays populated even when a filter
// matches nothing.
type Graph struct {
	Nodes          []Node   `json:"nodes"`
	Edges          []Edge   `json:"edges"`
	AvailableDates []string `json:"availableDates"`
}
