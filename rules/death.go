package rules

// checkForDeath looks at where the head is about to go and returns the cause of
// death, or "" if the move is safe. The body checked is the one before the
// move, so the tail cell still counts even though it would be vacated.
func checkForDeath(width, height int, next Point, body []Point) string {
	if deathByOutOfBounds(next, width, height) {
		return DeathCauseWallCollision
	}
	for _, b := range body {
		if deathByBodyCollision(next, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, width, height int) bool {
	return !head.In(width, height)
}
