package cmd

import (
	"github.com/go-drift/numberflow/pkg/errors"
	"github.com/go-drift/numberflow/pkg/numberflow"
	"github.com/go-drift/numberflow/pkg/text"
)

// host applies render plans the way a UI host would: it answers auto-fit
// measurement requests synchronously and renders again when the measured
// font size differs from the one just planned.
type host struct {
	flow     *numberflow.Flow
	props    numberflow.Props
	measurer text.Measurer
}

func newHost(props numberflow.Props, opts numberflow.Options) (*host, error) {
	h := &host{props: props}
	if props.AutoFitText {
		m, err := text.DefaultFontMeasurer()
		if err != nil {
			return nil, err
		}
		h.measurer = m
	}
	h.flow = numberflow.New(opts)
	return h, nil
}

// render updates the flow with value and returns the plan to apply.
func (h *host) render(value string) numberflow.RenderPlan {
	h.props.Value = value
	plan := h.flow.Update(h.props)
	if plan.Measure == nil || h.measurer == nil {
		return plan
	}

	m, err := h.measurer.Measure(*plan.Measure)
	if err != nil {
		errors.Report(&errors.FlowError{
			Op:    "cmd.host.measure",
			Kind:  errors.KindMeasure,
			Err:   err,
			Value: value,
		})
		return plan
	}
	if h.flow.ApplyMeasurement(plan.Measure.ID, m) {
		plan = h.flow.Update(h.props)
	}
	return plan
}

func (h *host) dispose() {
	h.flow.Dispose()
}
