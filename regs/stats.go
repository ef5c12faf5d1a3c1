package regs

// Stats is a result collection of a pass: token -> its own counter.
// Not safe for concurrent use; every pass owns its Stats exclusively.
type Stats map[string]*LetterStat

func NewStats(initCap int) Stats {
	return make(Stats, initCap)
}

// CheckIn counts one more observation of token and returns its new count.
func (r Stats) CheckIn(token string) int {
	stat, ok := r[token]
	if !ok {
		stat = &LetterStat{Token: token}
		r[token] = stat
	}
	return stat.Add(1)
}

func (r Stats) GetScore(token string) int {
	if stat, ok := r[token]; ok {
		return stat.Count
	}
	return 0
}

func (r Stats) GetScores() map[string]int {
	result := make(map[string]int, len(r))
	for k, c := range r {
		result[k] = c.Count
	}
	return result
}

// GetCounterPairs returns a snapshot in no particular order.
func (r Stats) GetCounterPairs() []CounterPair {
	pairs := make([]CounterPair, 0, len(r))
	for k, c := range r {
		pairs = append(pairs, CounterPair{k, c.Count})
	}
	return pairs
}

// Sorted returns a snapshot sorted by token (ordinal ascending).
func (r Stats) Sorted() []CounterPair {
	return SortByKey(r.GetCounterPairs())
}

func (r Stats) KeysCount() int {
	return len(r)
}

func (r Stats) TotalCount() (totalCount int) {
	for _, c := range r {
		totalCount += c.Count
	}
	return
}

// RemoveIf deletes every entry whose token satisfies match and returns the number removed.
func (r Stats) RemoveIf(match func(token string) bool) (removed int) {
	for token := range r {
		if match(token) {
			delete(r, token)
			removed++
		}
	}
	return
}

// Clone returns a deep copy, so filtering the copy leaves r untouched.
func (r Stats) Clone() Stats {
	result := make(Stats, len(r))
	for k, c := range r {
		stat := *c
		result[k] = &stat
	}
	return result
}
