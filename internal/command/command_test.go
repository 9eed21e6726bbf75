package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viniciusth/stringology/internal/experiment"
	"github.com/viniciusth/stringology/internal/word"

	"github.com/nuclio/errors"
	"github.com/stretchr/testify/suite"
)

type CommandTestSuite struct {
	suite.Suite
	tempDir string
}

func (suite *CommandTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

// execute runs the root command with input on stdin and returns what it wrote
func (suite *CommandTestSuite) execute(input string, args ...string) (string, error) {
	rootCommandeer := NewRootCommandeer()

	var output bytes.Buffer
	rootCommandeer.GetCmd().SetOut(&output)
	rootCommandeer.GetCmd().SetIn(strings.NewReader(input))
	rootCommandeer.GetCmd().SetArgs(args)

	err := rootCommandeer.Execute()
	return output.String(), err
}

func (suite *CommandTestSuite) mustExecute(input string, args ...string) string {
	output, err := suite.execute(input, args...)
	suite.Require().NoError(err, "args %v", args)
	return output
}

func (suite *CommandTestSuite) readFile(path string) string {
	contents, err := os.ReadFile(path)
	suite.Require().NoError(err)
	return string(contents)
}

// resultLine returns the RESULT line of output, failing if there is none
func (suite *CommandTestSuite) resultLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "RESULT ") {
			return line
		}
	}
	suite.FailNow("no RESULT line", output)
	return ""
}

func (suite *CommandTestSuite) TestLZ77() {
	output := suite.mustExecute("abababab", "lz77", "--check")
	line := suite.resultLine(output)
	suite.Require().True(strings.HasPrefix(line, "RESULT file=stdin length=8 algo=lz77 factors=3 time_ms="), line)

	output = suite.mustExecute("aaaa", "lz77", "--print")
	suite.Require().True(strings.HasPrefix(output, "('a')\n(1,3)\n"), output)
}

func (suite *CommandTestSuite) TestLexParse() {
	output := suite.mustExecute("banana", "lexparse", "--check")
	line := suite.resultLine(output)
	suite.Require().True(strings.HasPrefix(line, "RESULT file=stdin length=6 algo=lexparse factors=4 time_ms="), line)

	path := filepath.Join(suite.tempDir, "lexparse.txt")
	suite.mustExecute("aaaa", "lexparse", "-o", path)
	suite.Require().Equal("(1,3)\n(97,0)\n", suite.readFile(path))
}

func (suite *CommandTestSuite) TestInputFlags() {
	path := filepath.Join(suite.tempDir, "input.txt")
	suite.Require().NoError(os.WriteFile(path, []byte("aaaabbbb"), 0o644))

	output := suite.mustExecute("", "lz77", "-i", path, "-p", "4")
	suite.Require().Contains(suite.resultLine(output), "file="+path+" length=4 algo=lz77 factors=2")

	_, err := suite.execute("", "lz77", "-i", filepath.Join(suite.tempDir, "missing.txt"))
	suite.Require().Error(err)

	// the reserved sentinel cannot be indexed
	_, err = suite.execute("ab\x00c", "lz77")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestLyndon() {
	output := suite.mustExecute("banana", "lyndon", "--check")
	suite.Require().Contains(suite.resultLine(output), "algo=duval factors=4")

	path := filepath.Join(suite.tempDir, "factors.txt")
	suite.mustExecute("banana", "lyndon", "-o", path)
	suite.Require().Equal(
		">Factor 1 : 0 -> 1\nb\n>Factor 2 : 1 -> 3\nan\n>Factor 3 : 3 -> 5\nan\n>Factor 4 : 5 -> 6\na\n",
		suite.readFile(path))
}

func (suite *CommandTestSuite) TestBWT() {
	path := filepath.Join(suite.tempDir, "bwt.bin")
	output := suite.mustExecute("banana", "bwt", "-o", path)
	suite.Require().Contains(suite.resultLine(output), "algo=bwt runs=5 no_dollar=false use_matrix=false")
	suite.Require().Equal("annb\x00aa", suite.readFile(path))

	suite.mustExecute("banana", "bwt", "--matrix", "-o", path)
	suite.Require().Equal("annb\x00aa", suite.readFile(path))

	// sorting suffixes and sorting rotations differ without the sentinel
	output = suite.mustExecute("abaab", "bwt", "--no-dollar", "-o", path)
	suite.Require().Contains(suite.resultLine(output), "runs=4 no_dollar=true use_matrix=false")
	suite.Require().Equal("babaa", suite.readFile(path))

	output = suite.mustExecute("abaab", "bwt", "--no-dollar", "--matrix", "-o", path)
	suite.Require().Contains(suite.resultLine(output), "runs=2 no_dollar=true use_matrix=true")
	suite.Require().Equal("bbaaa", suite.readFile(path))

	output = suite.mustExecute("banana", "bwt", "--bijective")
	suite.Require().Contains(suite.resultLine(output), "algo=bbwt")

	_, err := suite.execute("banana", "bwt", "--bijective", "--no-dollar")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestMUS() {
	output := suite.mustExecute("banana", "mus")
	suite.Require().True(strings.HasPrefix(output, "(0,1)\n(2,3)\n"), output)
	suite.Require().Contains(suite.resultLine(output), "algo=mus count=2")

	output = suite.mustExecute("banana", "mus", "-q")
	suite.Require().True(strings.HasPrefix(output, "RESULT "), output)
}

func (suite *CommandTestSuite) TestAttractor() {
	output := suite.mustExecute("abaababa", "attractor", "-a", "3,4")
	suite.Require().True(strings.HasPrefix(output, "valid attractor\n"), output)
	suite.Require().Contains(suite.resultLine(output), "positions=2 valid=true")

	output = suite.mustExecute("abab", "attractor", "-a", "1")
	suite.Require().True(strings.HasPrefix(output, "substring 'a' not covered!\n"), output)
	suite.Require().Contains(suite.resultLine(output), "valid=false")

	_, err := suite.execute("abab", "attractor", "-a", "4")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestLocate() {
	output := suite.mustExecute("abracadabra", "locate", "abra")
	suite.Require().True(strings.HasPrefix(output, "0 7\n"), output)
	suite.Require().Contains(suite.resultLine(output), "algo=locate count=2")

	output = suite.mustExecute("abracadabra", "locate", "a", "--limit", "2")
	suite.Require().True(strings.HasPrefix(output, "0 3\n"), output)
	suite.Require().Contains(suite.resultLine(output), "count=5")

	output = suite.mustExecute("abracadabra", "locate", "zz")
	suite.Require().Contains(suite.resultLine(output), "count=0")

	_, err := suite.execute("abracadabra", "locate")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestWord() {
	output := suite.mustExecute("", "word", "--name", "fibonacci", "-k", "5")
	suite.Require().Equal("abaababa", output)

	path := filepath.Join(suite.tempDir, "word.txt")
	suite.mustExecute("", "word", "--name", "thue-morse", "-k", "3", "-o", path)
	suite.Require().Equal("abbabaab", suite.readFile(path))

	_, err := suite.execute("", "word", "--name", "tribonacci")
	suite.Require().Error(err)

	for _, k := range []string{"64", "100", "-5"} {
		for _, name := range word.Names {
			_, err := suite.execute("", "word", "--name", name, "-k", k)
			suite.Require().Error(err, "%s/%s", name, k)
			suite.Require().Equal(word.ErrIndexOutOfRange, errors.RootCause(err))
		}
	}
}

func (suite *CommandTestSuite) TestLyndonWords() {
	output := suite.mustExecute("", "lyndon-words", "-l", "3", "-s", "2")
	suite.Require().Equal("a\naab\nab\nabb\nb\n", output)

	_, err := suite.execute("", "lyndon-words", "-s", "27")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestSearch() {
	output := suite.mustExecute("", "search", "--min-bits", "3", "--max-bits", "5", "-w", "2", "-f", "json")

	var results []experiment.Stats
	suite.Require().NoError(json.Unmarshal([]byte(output), &results))
	suite.Require().Len(results, 3)
	for i, stats := range results {
		suite.Require().Equal(i+3, stats.Bits)
		suite.Require().Equal(uint64(1)<<(i+3), stats.Words)
	}

	output = suite.mustExecute("", "search", "--min-bits", "2", "--max-bits", "3")
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	suite.Require().Len(lines, 3)
	suite.Require().Contains(lines[0], "BBWT WINS")

	_, err := suite.execute("", "search", "--max-bits", "41")
	suite.Require().Error(err)

	_, err = suite.execute("", "search", "-f", "yaml")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestBench() {
	output := suite.mustExecute("", "bench", "--word", "fibonacci", "-k", "10", "--runs", "2", "-q", "10", "--pattern-length", "3")
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	suite.Require().Len(lines, 3)
	suite.Require().True(strings.HasPrefix(lines[0], "variant,length"), lines[0])
	suite.Require().True(strings.HasPrefix(lines[1], "full,89,3,10,"), lines[1])

	output = suite.mustExecute("abracadabra", "bench", "--variant", "no_nsv", "--runs", "1", "-q", "5", "--pattern-length", "2", "--no-header")
	suite.Require().True(strings.HasPrefix(output, "no_nsv,11,2,5,"), output)

	_, err := suite.execute("", "bench", "--variant", "sparse")
	suite.Require().Error(err)

	_, err = suite.execute("", "bench", "--word", "thue-morse", "-k", "64")
	suite.Require().Equal(word.ErrIndexOutOfRange, errors.RootCause(err))
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
