package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/diagnostics"
	"github.com/go-drift/numberflow/pkg/numberflow"
	"github.com/go-drift/numberflow/pkg/text"
)

// previewFrame is the preview's display frame interval (~60 fps).
const previewFrame = 16 * time.Millisecond

func init() {
	RegisterCommand(newPreviewCmd())
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [flags] <value>...",
		Short: "Animate values in the terminal",
		Long: `Animate a sequence of values as digit reels in the terminal.

Keys:
  space, right   next value
  left           previous value
  r              toggle the system reduced-motion preference
  q, esc         quit

Use --log-file with --debug; logging to stderr would garble the screen.

Examples:
  numberflow preview 1,234 1,299 12,001
  numberflow preview --every 1s --metrics-addr :9090 '$9.99' '$10.49'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPreview,
	}
	cmd.Flags().Duration("every", 0, "advance to the next value automatically at this interval")
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	props, err := loadProps(cmd)
	if err != nil {
		return err
	}
	every, _ := cmd.Flags().GetDuration("every")
	addr, _ := cmd.Flags().GetString("metrics-addr")

	reg := prometheus.NewRegistry()
	opts := numberflow.Options{
		Logger:  logger,
		Metrics: diagnostics.NewMetrics("numberflow", reg),
	}
	h, err := newHost(props, opts)
	if err != nil {
		return err
	}
	defer h.dispose()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The screen loop and the metrics server stop together: quitting the
	// preview closes the server, and a server failure ends the preview.
	g, gctx := errgroup.WithContext(ctx)
	if addr != "" {
		srv := metricsServer(addr, reg)
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", zap.Error(err))
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return srv.Close()
		})
	}
	g.Go(func() error {
		defer cancel()
		return newPreview(screen, h, args, every).run(gctx)
	})
	return g.Wait()
}

func metricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// preview is a terminal host for one flow.
type preview struct {
	screen tcell.Screen
	host   *host
	values []string
	every  time.Duration

	index    int
	plan     numberflow.RenderPlan
	shownAt  time.Time
	painted  bool
	settling bool
}

func newPreview(screen tcell.Screen, h *host, values []string, every time.Duration) *preview {
	return &preview{
		screen: screen,
		host:   h,
		values: values,
		every:  every,
	}
}

// show renders the value at index i.
func (p *preview) show(i int) {
	p.index = i
	p.plan = p.host.render(p.values[i])
	p.shownAt = animation.Now()
}

func (p *preview) step(delta int) {
	n := len(p.values)
	p.show(((p.index+delta)%n + n) % n)
}

// handle applies an input event and reports whether the preview continues.
func (p *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			p.step(1)
		case tcell.KeyLeft:
			p.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.step(1)
			case 'r':
				animation.SetSystemReduceMotion(!animation.SystemReduceMotion())
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// tick advances animations by one display frame and redraws.
func (p *preview) tick() {
	animation.StepTickers()
	frame := p.host.flow.Frame()
	p.settling = !frame.Settled()
	p.draw(frame)

	if !p.painted {
		p.painted = true
		p.host.flow.DidPaint()
	}
	if p.every > 0 && len(p.values) > 1 && animation.Now().Sub(p.shownAt) >= p.every {
		p.step(1)
	}
}

func (p *preview) draw(frame numberflow.Frame) {
	p.screen.Clear()
	w, h := p.screen.Size()
	x0 := max((w-len(p.plan.Glyphs))/2, 0)
	y0 := h / 2

	digit := cellStyle(p.plan.DigitStyle.Color, 1)
	neighbor := cellStyle(p.plan.DigitStyle.Color, 0.35)
	for _, r := range frame.Reels {
		pos := numberflow.StripPosition(r.Offset, frame.LineHeight)
		center := int(math.Round(pos))
		x := x0 + r.Index
		p.setDigit(x, y0, center, digit)
		if r.Phase == numberflow.PhaseSettling {
			p.setDigit(x, y0-1, center-1, neighbor)
			p.setDigit(x, y0+1, center+1, neighbor)
		}
	}
	for _, s := range frame.Separators {
		ch, _ := utf8.DecodeRuneInString(s.Char)
		p.screen.SetContent(x0+s.Index, y0, ch, nil, cellStyle(p.plan.SeparatorStyle.Color, s.Opacity))
	}

	drawText(p.screen, 0, 0, "space: next  left: previous  r: reduce motion  q: quit", tcell.StyleDefault.Dim(true))
	state := "at rest"
	if p.settling {
		state = "settling"
	}
	reduce := ""
	if animation.SystemReduceMotion() {
		reduce = "  reduced motion"
	}
	status := fmt.Sprintf("%d/%d  %s  font %.0f  line %.0f  %s%s",
		p.index+1, len(p.values), p.plan.Semantics.Label, p.plan.FontSize, p.plan.LineHeight, state, reduce)
	drawText(p.screen, 0, h-1, status, tcell.StyleDefault)
	p.screen.Show()
}

func (p *preview) setDigit(x, y, d int, style tcell.Style) {
	if d < 0 || d > 9 {
		return
	}
	p.screen.SetContent(x, y, numberflow.Strip()[d], nil, style)
}

// run drives frames until the context ends or the user quits.
func (p *preview) run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(previewFrame)
	defer ticker.Stop()

	p.show(0)
	p.tick()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !p.handle(ev) {
				return nil
			}
		case <-ticker.C:
			p.tick()
		}
	}
}

// cellStyle maps a text color at the given opacity to a terminal style.
// An unset color draws white.
func cellStyle(c text.Color, opacity float64) tcell.Style {
	r, g, b, a := c.RGBA()
	if c == 0 {
		r, g, b, a = 0xFF, 0xFF, 0xFF, 0xFF
	}
	k := max(0, min(opacity, 1)) * float64(a) / 0xFF
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(float64(r)*k),
		int32(float64(g)*k),
		int32(float64(b)*k),
	))
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
