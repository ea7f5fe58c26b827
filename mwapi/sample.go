package mwapi

// sampleIDs draws a uniform sample without replacement, sized to n or to the
// candidate count when smaller. A partial Fisher-Yates shuffle keeps every
// position equally likely, so the sample is never biased toward either end
// of the underlying list.
func (c *Client) sampleIDs(ids []int64, n int) []int64 {
	if n <= 0 {
		return []int64{}
	}
	pool := make([]int64, len(ids))
	copy(pool, ids)

	if n >= len(pool) {
		return pool
	}

	for i := 0; i < n; i++ {
		j := i + c.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
