package huffman

import (
	"math"
	"sync"
)

// Frequencies holds the number of occurrences of each Symbol.
type Frequencies [NumSymbols]uint64

// CountFrequencies counts the occurrences of each byte in data.
func CountFrequencies(data []byte) Frequencies {
	var f Frequencies
	f.Add(data)
	return f
}

// CountFrequenciesParallel is like CountFrequencies, but splits data into at
// most parts contiguous chunks and counts them concurrently.
func CountFrequenciesParallel(data []byte, parts int) Frequencies {
	if parts > len(data) {
		parts = len(data)
	}
	if parts <= 1 {
		return CountFrequencies(data)
	}

	partial := make([]Frequencies, parts)
	chunk := (len(data) + parts - 1) / parts

	var wg sync.WaitGroup
	for i := 0; i < parts; i++ {
		lo := i * chunk
		if lo >= len(data) {
			break
		}
		hi := lo + chunk
		if hi > len(data) {
			hi = len(data)
		}
		wg.Add(1)
		go func(f *Frequencies, data []byte) {
			defer wg.Done()
			f.Add(data)
		}(&partial[i], data[lo:hi])
	}
	wg.Wait()

	var f Frequencies
	for i := range partial {
		f.Merge(&partial[i])
	}
	return f
}

// Add counts the bytes of data on top of the existing counts.
func (f *Frequencies) Add(data []byte) {
	for _, b := range data {
		f[b]++
	}
}

// Merge adds the counts of other into f.  Counts saturate at
// math.MaxUint64.
func (f *Frequencies) Merge(other *Frequencies) {
	for symbol := range f {
		sum := f[symbol] + other[symbol]
		if sum < f[symbol] {
			sum = math.MaxUint64
		}
		f[symbol] = sum
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (f *Frequencies) Distinct() int {
	var n int
	for _, count := range f {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}
	return total
}
