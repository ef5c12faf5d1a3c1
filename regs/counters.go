package regs

import "sort"

// LetterStat is the counter of one token; it only grows.
type LetterStat struct {
	Token string
	Count int
}

func (r *LetterStat) Add(num int) int {
	if num > 0 {
		r.Count += num
	}
	return r.Count
}

type CounterPair struct {
	Key   string
	Count int
}

// CounterPairsByKey sorts by key in byte-wise (ordinal) order.
type CounterPairsByKey []CounterPair

func (c CounterPairsByKey) Len() int {
	return len(c)
}

func (c CounterPairsByKey) Less(i, j int) bool {
	return c[i].Key < c[j].Key
}

func (c CounterPairsByKey) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

func SortByKey(pairs []CounterPair) []CounterPair {
	sort.Sort(CounterPairsByKey(pairs))
	return pairs
}

func Total(pairs []CounterPair) (total int) {
	for _, cp := range pairs {
		total += cp.Count
	}
	return
}
