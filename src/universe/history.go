package universe

// DefHistorySize is the number of population samples kept by the History
const DefHistorySize = 1000

// History keeps the population of the latest generations
// samples are stored in a ring buffer, the oldest ones are overwritten
type History struct {
	samples []int
	next    int
	count   int
}

// NewHistory creates the History keeping up to size samples
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefHistorySize
	}
	return &History{samples: make([]int, size)}
}

// Record stores the population of the latest generation
func (h *History) Record(population int) {
	h.samples[h.next] = population
	h.next = (h.next + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len returns the number of stored samples
func (h *History) Len() int {
	return h.count
}

// Last returns the latest recorded population, 0 if nothing is recorded
func (h *History) Last() int {
	if h.count == 0 {
		return 0
	}
	return h.samples[(h.next-1+len(h.samples))%len(h.samples)]
}

// RollingAverage returns the integer mean of the last n samples
// fewer samples are used while the history is shorter than n
func (h *History) RollingAverage(n int) int {
	if n > h.count {
		n = h.count
	}
	if n <= 0 {
		return 0
	}
	sum := 0
	for i := 1; i <= n; i++ {
		sum += h.samples[(h.next-i+len(h.samples))%len(h.samples)]
	}
	return sum / n
}

// Reset forgets all samples
func (h *History) Reset() {
	h.next = 0
	h.count = 0
}
