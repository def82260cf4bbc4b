// Package xrandr provides the display query adapter backed by the xrandr tool.
package xrandr

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
	"go.trai.ch/zerr"
)

// Query implements ports.DisplayQuery by parsing `xrandr --query` output.
type Query struct {
	sys ports.System
}

// NewQuery creates a new Query adapter.
func NewQuery(sys ports.System) *Query {
	return &Query{
		sys: sys,
	}
}

// Outputs enumerates every output xrandr reports. It returns
// domain.ErrDisplayToolingUnavailable when xrandr itself cannot run.
func (q *Query) Outputs(ctx context.Context) ([]domain.Output, error) {
	result, err := q.sys.Run(ctx, "xrandr", "--query")
	if err != nil {
		return nil, zerr.Wrap(domain.ErrDisplayToolingUnavailable, err.Error())
	}
	return parseQuery(result.Stdout), nil
}

// parseQuery walks xrandr's line-oriented output. Output headers are
// unindented ("HDMI-1 connected primary 1920x1080+0+0 ..."); the starred
// indented mode line below a header is that output's current mode.
func parseQuery(out string) []domain.Output {
	var outputs []domain.Output

	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.HasPrefix(line, "Screen ") {
			continue
		}

		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			switch fields[1] {
			case "connected":
				outputs = append(outputs, domain.Output{
					Name:      fields[0],
					Connected: true,
					Primary:   len(fields) > 2 && fields[2] == "primary",
				})
			case "disconnected":
				outputs = append(outputs, domain.Output{Name: fields[0]})
			}
			continue
		}

		// Mode line. The star marks the mode currently in use.
		if !strings.Contains(line, "*") || len(outputs) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		w, h, ok := parseMode(fields[0])
		if !ok {
			continue
		}
		last := &outputs[len(outputs)-1]
		if last.Width == 0 && last.Height == 0 {
			last.Width = w
			last.Height = h
		}
	}

	return outputs
}

func parseMode(s string) (width, height int, ok bool) {
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
