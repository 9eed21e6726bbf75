// Package experiment compares the number of runs of the conjugate BWT and the bijective BWT
// over every binary word of a given length.
package experiment

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/viniciusth/stringology"
	"github.com/viniciusth/stringology/internal/errgroup"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

// MaxBits bounds the word length, since every length enumerates 2^bits words.
const MaxBits = 40

// Stats aggregates the comparison over all binary words of length Bits.
type Stats struct {
	Bits         int
	Words        uint64
	NonPrimitive uint64
	BWTWins      uint64
	BBWTWins     uint64
	Ties         uint64

	// Score sums bbwt runs - bwt runs over all words
	Score int64

	// the word on which the bijective BWT saves the most runs, empty if it never wins
	BestText     string
	BestBWTRuns  int
	BestBBWTRuns int
	bestNumber   uint64
}

type Searcher struct {
	logger  logger.Logger
	workers int
}

func NewSearcher(parentLogger logger.Logger, workers int) (*Searcher, error) {
	if workers < 1 {
		return nil, errors.Errorf("Number of workers must be positive, got %d", workers)
	}
	return &Searcher{
		logger:  parentLogger,
		workers: workers,
	}, nil
}

// Run compares both transforms for every length in [minBits, maxBits].
func (s *Searcher) Run(ctx context.Context, minBits, maxBits int) ([]Stats, error) {
	if minBits < 1 || maxBits > MaxBits || minBits > maxBits {
		return nil, errors.Errorf("Invalid bit range [%d, %d], must lie within [1, %d]", minBits, maxBits, MaxBits)
	}

	var results []Stats
	for bits := minBits; bits <= maxBits; bits++ {
		start := time.Now()
		stats, err := s.runBits(ctx, bits)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to search words of %d bits", bits)
		}
		s.logger.DebugWith("Searched words",
			"bits", bits,
			"bwtWins", stats.BWTWins,
			"bbwtWins", stats.BBWTWins,
			"duration", time.Since(start).String())
		results = append(results, *stats)
	}
	return results, nil
}

func (s *Searcher) runBits(ctx context.Context, bits int) (*Stats, error) {
	total := uint64(1) << bits
	workers := uint64(s.workers)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	merged := &Stats{Bits: bits}
	var lock sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx, s.logger)
	for begin := uint64(0); begin < total; begin += chunk {
		end := min(begin+chunk, total)
		group.Go("search words", func() error {
			local, err := searchRange(groupCtx, bits, begin, end)
			if err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			merged.merge(local)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

// searchRange compares the transforms on the words numbered [begin, end)
func searchRange(ctx context.Context, bits int, begin, end uint64) (*Stats, error) {
	stats := &Stats{Bits: bits}
	text := make([]byte, bits)
	for number := begin; number < end; number++ {
		if number%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		BinaryWord(number, text)
		bwt, err := stringology.ConjugateBWT(text)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to transform word %s", text)
		}
		bwtRuns := stringology.Runs(bwt)
		bbwtRuns := stringology.Runs(stringology.BijectiveBWT(text))

		stats.Words++
		if !IsPrimitive(text) {
			stats.NonPrimitive++
		}
		stats.Score += int64(bbwtRuns - bwtRuns)
		switch {
		case bwtRuns < bbwtRuns:
			stats.BWTWins++
		case bwtRuns > bbwtRuns:
			stats.BBWTWins++
		default:
			stats.Ties++
		}

		if bbwtRuns < bwtRuns {
			stats.offerBest(string(text), number, bwtRuns, bbwtRuns)
		}
	}
	return stats, nil
}

func (s *Stats) merge(other *Stats) {
	s.Words += other.Words
	s.NonPrimitive += other.NonPrimitive
	s.BWTWins += other.BWTWins
	s.BBWTWins += other.BBWTWins
	s.Ties += other.Ties
	s.Score += other.Score
	if other.BestText != "" {
		s.offerBest(other.BestText, other.bestNumber, other.BestBWTRuns, other.BestBBWTRuns)
	}
}

// offerBest keeps the word with the largest saving, then the fewest zeros, then the smallest number
func (s *Stats) offerBest(text string, number uint64, bwtRuns, bbwtRuns int) {
	if s.BestText != "" {
		saving, bestSaving := bwtRuns-bbwtRuns, s.BestBWTRuns-s.BestBBWTRuns
		if saving < bestSaving {
			return
		}
		if saving == bestSaving {
			zeros, bestZeros := countZeros(text), countZeros(s.BestText)
			if zeros > bestZeros || (zeros == bestZeros && number > s.bestNumber) {
				return
			}
		}
	}
	s.BestText = text
	s.bestNumber = number
	s.BestBWTRuns = bwtRuns
	s.BestBBWTRuns = bbwtRuns
}

func countZeros(text string) int {
	return bytes.Count([]byte(text), []byte{'0'})
}

// BinaryWord writes number as a word over {'0', '1'}, least significant bit first.
func BinaryWord(number uint64, text []byte) {
	for i := range text {
		if number&(1<<i) == 0 {
			text[i] = '0'
		} else {
			text[i] = '1'
		}
	}
}

// IsPrimitive reports whether text is not a proper power of a shorter word.
// The smallest period comes from the border array.
func IsPrimitive(text []byte) bool {
	n := len(text)
	if n == 0 {
		return false
	}
	border := make([]int, n+1)
	border[0] = -1
	for i := 0; i < n; i++ {
		length := border[i]
		for length >= 0 && text[length] != text[i] {
			length = border[length]
		}
		border[i+1] = length + 1
	}
	period := n - border[n]
	return period == n || n%period != 0
}
