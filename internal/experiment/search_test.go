package experiment

import (
	"context"
	"strings"
	"testing"

	"github.com/viniciusth/stringology"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
)

type SearchTestSuite struct {
	suite.Suite
	logger logger.Logger
	ctx    context.Context
}

func (suite *SearchTestSuite) SetupTest() {
	var err error
	suite.logger, err = nucliozap.NewNuclioZapTest("test")
	suite.Require().NoError(err)
	suite.ctx = context.Background()
}

func (suite *SearchTestSuite) TestCountersSumUp() {
	searcher, err := NewSearcher(suite.logger, 4)
	suite.Require().NoError(err)

	results, err := searcher.Run(suite.ctx, 1, 10)
	suite.Require().NoError(err)
	suite.Require().Len(results, 10)

	for i, stats := range results {
		bits := i + 1
		suite.Require().Equal(bits, stats.Bits)
		suite.Require().Equal(uint64(1)<<bits, stats.Words)
		suite.Require().Equal(stats.Words, stats.BWTWins+stats.BBWTWins+stats.Ties)
		if stats.BestText != "" {
			suite.Require().Len(stats.BestText, bits)
			suite.Require().Less(stats.BestBBWTRuns, stats.BestBWTRuns)
		}
	}
}

func (suite *SearchTestSuite) TestParallelMatchesSequential() {
	sequential, err := NewSearcher(suite.logger, 1)
	suite.Require().NoError(err)
	parallel, err := NewSearcher(suite.logger, 7)
	suite.Require().NoError(err)

	expected, err := sequential.Run(suite.ctx, 3, 11)
	suite.Require().NoError(err)
	got, err := parallel.Run(suite.ctx, 3, 11)
	suite.Require().NoError(err)
	suite.Require().Equal(expected, got)
}

func (suite *SearchTestSuite) TestMatchesNaiveCount() {
	const bits = 8
	var expected Stats
	text := make([]byte, bits)
	for number := uint64(0); number < 1<<bits; number++ {
		BinaryWord(number, text)
		bwtRuns := stringology.Runs(stringology.NaiveConjugateBWT(text))
		bbwtRuns := stringology.Runs(stringology.BijectiveBWT(text))
		switch {
		case bwtRuns < bbwtRuns:
			expected.BWTWins++
		case bwtRuns > bbwtRuns:
			expected.BBWTWins++
		default:
			expected.Ties++
		}
		expected.Score += int64(bbwtRuns - bwtRuns)
		if !naiveIsPrimitive(string(text)) {
			expected.NonPrimitive++
		}
	}

	searcher, err := NewSearcher(suite.logger, 3)
	suite.Require().NoError(err)
	results, err := searcher.Run(suite.ctx, bits, bits)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)

	stats := results[0]
	suite.Require().Equal(expected.BWTWins, stats.BWTWins)
	suite.Require().Equal(expected.BBWTWins, stats.BBWTWins)
	suite.Require().Equal(expected.Ties, stats.Ties)
	suite.Require().Equal(expected.Score, stats.Score)
	suite.Require().Equal(expected.NonPrimitive, stats.NonPrimitive)
}

func (suite *SearchTestSuite) TestInvalidArguments() {
	_, err := NewSearcher(suite.logger, 0)
	suite.Require().Error(err)

	searcher, err := NewSearcher(suite.logger, 2)
	suite.Require().NoError(err)
	for _, r := range [][2]int{{0, 3}, {5, 4}, {1, MaxBits + 1}} {
		_, err := searcher.Run(suite.ctx, r[0], r[1])
		suite.Require().Error(err, "range %v", r)
	}
}

func (suite *SearchTestSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	searcher, err := NewSearcher(suite.logger, 2)
	suite.Require().NoError(err)
	_, err = searcher.Run(ctx, 4, 4)
	suite.Require().Error(err)
}

func (suite *SearchTestSuite) TestBinaryWord() {
	text := make([]byte, 5)
	BinaryWord(6, text)
	suite.Require().Equal("01100", string(text))
}

func (suite *SearchTestSuite) TestIsPrimitive() {
	for _, text := range []string{"a", "ab", "aab", "abab", "aaaa", "abaaba", "abcabcab", "0101", "0110"} {
		suite.Require().Equal(naiveIsPrimitive(text), IsPrimitive([]byte(text)), text)
	}
	suite.Require().False(IsPrimitive(nil))
}

// naiveIsPrimitive checks whether text equals a repetition of one of its proper prefixes
func naiveIsPrimitive(text string) bool {
	n := len(text)
	for p := 1; p < n; p++ {
		if n%p == 0 && strings.Repeat(text[:p], n/p) == text {
			return false
		}
	}
	return true
}

func TestSearchTestSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}
