// Package display negotiates a deterministic resolution plan across all
// connected outputs.
package display

import (
	"context"
	"errors"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
)

// RefreshRate is the fixed refresh target for every mode-set.
const RefreshRate = 60

// DefaultOutputs is the documented fallback set used when output
// enumeration itself fails. A best-effort guess beats an empty plan, which
// would leave the session with no resolution applied at all.
var DefaultOutputs = []string{"HDMI-1", "VGA-1", "eDP-1"}

// Resolver implements the resolution negotiation step.
type Resolver struct {
	query  ports.DisplayQuery
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(query ports.DisplayQuery, logger ports.Logger) *Resolver {
	return &Resolver{
		query:  query,
		logger: logger,
	}
}

// Resolve produces one OutputMode per connected output. With both width and
// height supplied they are used verbatim for every output; otherwise the
// primary output's current mode is the base resolution, and the absence of
// a primary output is a hard error rather than a guess.
func (r *Resolver) Resolve(ctx context.Context, width, height int) (domain.ResolutionPlan, error) {
	explicit := width > 0 && height > 0

	outputs, err := r.query.Outputs(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrDisplayToolingUnavailable) {
			return domain.ResolutionPlan{}, err
		}
		return r.fallback(explicit, width, height, err)
	}

	connected := make([]domain.Output, 0, len(outputs))
	for _, o := range outputs {
		if o.Connected {
			connected = append(connected, o)
		}
	}
	if len(connected) == 0 {
		return r.fallback(explicit, width, height, domain.ErrDisplayToolingUnavailable)
	}

	if !explicit {
		width, height, err = primaryMode(connected)
		if err != nil {
			return domain.ResolutionPlan{}, err
		}
	}

	modes := make([]domain.OutputMode, 0, len(connected))
	for _, o := range connected {
		modes = append(modes, domain.OutputMode{
			Output:  o.Name,
			Width:   width,
			Height:  height,
			Refresh: RefreshRate,
		})
	}
	return domain.NewResolutionPlan(modes), nil
}

// fallback builds a plan over the default output set. Auto-detection is
// impossible without enumeration, so an explicit resolution is required.
func (r *Resolver) fallback(explicit bool, width, height int, cause error) (domain.ResolutionPlan, error) {
	if !explicit {
		return domain.ResolutionPlan{}, domain.ErrNoPrimaryOutput
	}

	r.logger.Warn("output enumeration failed, using default output set: " + cause.Error())

	modes := make([]domain.OutputMode, 0, len(DefaultOutputs))
	for _, name := range DefaultOutputs {
		modes = append(modes, domain.OutputMode{
			Output:  name,
			Width:   width,
			Height:  height,
			Refresh: RefreshRate,
		})
	}
	return domain.NewResolutionPlan(modes), nil
}

func primaryMode(connected []domain.Output) (width, height int, err error) {
	for _, o := range connected {
		if o.Primary && o.Width > 0 && o.Height > 0 {
			return o.Width, o.Height, nil
		}
	}
	return 0, 0, domain.ErrNoPrimaryOutput
}
