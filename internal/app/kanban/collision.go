package kanban

// ResolveCollision picks the droppable under the pointer using the two-stage
// rule the board relies on: direct containment first, nearest-corner distance
// as the fallback for pointers in the gaps between regions. Containment is
// exact and cheap; the corner heuristic only decides when nothing is hit.
//
// When the pointer sits inside several overlapping regions (a card inside its
// column), the smallest region wins, so cards shadow their column.
func ResolveCollision(p Point, droppables []Droppable) (string, bool) {
	if len(droppables) == 0 {
		return "", false
	}

	hitID := ""
	hitArea := 0.0
	for _, d := range droppables {
		if !d.Rect.Contains(p) {
			continue
		}
		if hitID == "" || d.Rect.Area() < hitArea {
			hitID = d.ID
			hitArea = d.Rect.Area()
		}
	}
	if hitID != "" {
		return hitID, true
	}

	bestID := ""
	bestDist := 0.0
	for _, d := range droppables {
		dist := nearestCornerDistance(p, d.Rect)
		if bestID == "" || dist < bestDist {
			bestID = d.ID
			bestDist = dist
		}
	}
	return bestID, true
}
