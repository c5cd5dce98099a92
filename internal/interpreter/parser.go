package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Mission is a parsed input: the grid and the robots to run on it, in order.
type Mission struct {
	Grid        Grid
	Deployments []Deployment
}

// Line grammars split a line into whitespace-separated fields. Numbers are
// converted afterwards with strconv.Atoi, so "2N" is one bad field rather
// than a number followed by a heading.
type gridLine struct {
	MaxX string `parser:"@Field"`
	MaxY string `parser:"@Field"`
}

type placementLine struct {
	X       string `parser:"@Field"`
	Y       string `parser:"@Field"`
	Heading string `parser:"@Field"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	gridParser = participle.MustBuild[gridLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	placementParser = participle.MustBuild[placementLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)

// Parse turns input text of the form
//
//	<maxX> <maxY>
//	<x> <y> <heading>
//	<program>
//	...
//
// into a Mission. The two-line robot block repeats one or more times.
// Programs are kept verbatim; bad instruction letters are reported when the
// robot runs.
func Parse(data string) (*Mission, error) {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 lines (grid dimensions and one robot), got %d", ErrMalformedInput, len(lines))
	}

	gl, err := gridParser.ParseString("", lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: grid dimensions must be 'X Y': %v", ErrMalformedInput, err)
	}
	maxX, maxY, err := atoiPair(gl.MaxX, gl.MaxY)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: %v", ErrMalformedInput, err)
	}
	g, err := NewGrid(maxX, maxY)
	if err != nil {
		return nil, err
	}

	m := &Mission{Grid: g}
	for i := 1; i < len(lines); i += 2 {
		d, err := parseDeployment(lines, i)
		if err != nil {
			return nil, err
		}
		m.Deployments = append(m.Deployments, d)
	}
	return m, nil
}

func parseDeployment(lines []string, i int) (Deployment, error) {
	pl, err := placementParser.ParseString("", lines[i])
	if err != nil {
		return Deployment{}, fmt.Errorf("%w: line %d: robot placement must be 'X Y H': %v", ErrMalformedInput, i+1, err)
	}
	x, y, err := atoiPair(pl.X, pl.Y)
	if err != nil {
		return Deployment{}, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i+1, err)
	}
	h, err := ParseHeading(pl.Heading)
	if err != nil {
		return Deployment{}, fmt.Errorf("line %d: %w", i+1, err)
	}
	if i+1 >= len(lines) {
		return Deployment{}, fmt.Errorf("%w: line %d: robot has no instruction line", ErrMalformedInput, i+2)
	}
	program := lines[i+1]
	if program == "" {
		return Deployment{}, fmt.Errorf("%w: line %d: empty instruction line", ErrMalformedInput, i+2)
	}
	return Deployment{
		Start:   Point{X: x, Y: y},
		Heading: h,
		Program: program,
	}, nil
}

func atoiPair(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
