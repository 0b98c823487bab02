// Package wig rewrites WIG fixedStep blocks as variableStep blocks with
// explicit positions. variableStep input passes through unchanged.
package wig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flatfile-core/seqio"
)

// ErrBadDeclaration reports a fixedStep line that cannot be interpreted.
var ErrBadDeclaration = errors.New("bad wig declaration")

type state int

const (
	stateStart state = iota // before the first declaration line
	stateFixed
	stateVariable
)

// Stats counts declaration blocks and data points written.
type Stats struct {
	Blocks int
	Points int
}

type fixedBlock struct {
	pos  int
	step int
}

// Convert reads WIG from r and writes the variableStep equivalent to w.
// Data lines before the first declaration, blank and '#' lines, and
// track/browser lines are dropped.
func Convert(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var (
		st    Stats
		cur   = stateStart
		fixed fixedBlock
		ln    int
	)
	lr := seqio.NewLineReader(r)
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		raw, err := lr.Next()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		ln++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || isTrackLine(line) {
			continue
		}

		var out string
		switch {
		case strings.HasPrefix(line, "fixedStep"):
			decl, err := parseDeclaration(line)
			if err != nil {
				return st, fmt.Errorf("line %d: %w", ln, err)
			}
			fixed, out, err = decl.toVariable()
			if err != nil {
				return st, fmt.Errorf("line %d: %w", ln, err)
			}
			cur = stateFixed
			st.Blocks++
		case strings.HasPrefix(line, "variableStep"):
			cur = stateVariable
			out = line
			st.Blocks++
		default:
			switch cur {
			case stateStart:
				continue
			case stateFixed:
				out = strconv.Itoa(fixed.pos) + " " + line
				fixed.pos += fixed.step
			case stateVariable:
				out = line
			default:
				return st, fmt.Errorf("line %d: unexpected converter state %d", ln, cur)
			}
			st.Points++
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return st, err
		}
	}
}

func isTrackLine(line string) bool {
	return strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser")
}

// declaration holds the key=value parameters of a step line.
type declaration map[string]string

func parseDeclaration(line string) (declaration, error) {
	fields := strings.Fields(line)
	d := declaration{}
	for _, kv := range fields[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: malformed parameter %q", ErrBadDeclaration, kv)
		}
		d[k] = v
	}
	return d, nil
}

func (d declaration) intParam(key string) (int, error) {
	v, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrBadDeclaration, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadDeclaration, key, v)
	}
	return n, nil
}

// toVariable returns the running position for a fixedStep block and the
// variableStep header that replaces it.
func (d declaration) toVariable() (fixedBlock, string, error) {
	chrom, ok := d["chrom"]
	if !ok || chrom == "" {
		return fixedBlock{}, "", fmt.Errorf("%w: missing chrom", ErrBadDeclaration)
	}
	start, err := d.intParam("start")
	if err != nil {
		return fixedBlock{}, "", err
	}
	step, err := d.intParam("step")
	if err != nil {
		return fixedBlock{}, "", err
	}
	header := "variableStep chrom=" + chrom
	if _, ok := d["span"]; ok {
		span, err := d.intParam("span")
		if err != nil {
			return fixedBlock{}, "", err
		}
		header += " span=" + strconv.Itoa(span)
	}
	return fixedBlock{pos: start, step: step}, header, nil
}
