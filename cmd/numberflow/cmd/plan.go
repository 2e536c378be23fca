package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/numberflow"
)

const (
	planFrame         = 16 * time.Millisecond
	planSettleTimeout = 10 * time.Second
)

func init() {
	RegisterCommand(newPlanCmd())
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [flags] <value>...",
		Short: "Print the render plan of each value as YAML",
		Long: `Render each value in turn and print the resulting plans as YAML.

Time is simulated: after each value the flow is painted and --interval of
frames is integrated before the next value arrives, so a short interval shows
reels being retargeted in flight. The final frame is printed once every reel
has settled.

Examples:
  numberflow plan 5 7
  numberflow plan --interval 40ms 1,234 1,299 12,001`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPlan,
	}
	cmd.Flags().Duration("interval", 100*time.Millisecond, "simulated time between values")
	cmd.Flags().Bool("no-paint", false, "never signal a paint, so every render is an initial render")
	return cmd
}

type planStep struct {
	At   time.Duration         `yaml:"at"`
	Plan numberflow.RenderPlan `yaml:"plan"`
}

type planOutput struct {
	Steps   []planStep       `yaml:"steps"`
	Settled numberflow.Frame `yaml:"settled"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	props, err := loadProps(cmd)
	if err != nil {
		return err
	}
	interval, _ := cmd.Flags().GetDuration("interval")
	noPaint, _ := cmd.Flags().GetBool("no-paint")
	if interval < 0 {
		return fmt.Errorf("--interval must not be negative")
	}

	out, err := simulate(props, args, interval, !noPaint, numberflow.Options{Logger: logger})
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), out)
}

// simulate renders values on a simulated clock and settles the last one.
func simulate(props numberflow.Props, values []string, interval time.Duration, paint bool, opts numberflow.Options) (planOutput, error) {
	now := time.Unix(0, 0)
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer animation.SetClock(prev)

	h, err := newHost(props, opts)
	if err != nil {
		return planOutput{}, err
	}
	defer h.dispose()

	var (
		out     planOutput
		elapsed time.Duration
	)
	for _, v := range values {
		out.Steps = append(out.Steps, planStep{At: elapsed, Plan: h.render(v)})
		if paint {
			h.flow.DidPaint()
		}
		for step := time.Duration(0); step < interval; step += planFrame {
			d := min(planFrame, interval-step)
			now = now.Add(d)
			elapsed += d
			animation.StepTickers()
		}
	}

	frame := h.flow.Frame()
	for waited := time.Duration(0); !frame.Settled(); waited += planFrame {
		if waited >= planSettleTimeout {
			return planOutput{}, fmt.Errorf("flow did not settle within %s", planSettleTimeout)
		}
		now = now.Add(planFrame)
		animation.StepTickers()
		frame = h.flow.Frame()
	}
	out.Settled = frame
	return out, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}
