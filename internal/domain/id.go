package domain

// NextID returns the ID for the next task: one greater than the current
// maximum, or 1 for an empty store. IDs are derived from the collection on
// every call, not reserved: deleting the highest-numbered task frees its
// number, while gaps below the maximum persist.
func NextID(tasks []*Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
