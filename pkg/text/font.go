package text

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/numberflow/pkg/errors"
)

const (
	// measureDPI makes one point equal one logical pixel.
	measureDPI = 72

	// minFontScale bounds shrink-to-fit, as a fraction of the requested size.
	minFontScale = 0.01

	fitIterations = 6

	familyGo     = "go"
	familyGoBold = "go-bold"
	familyGoMono = "go-mono"
)

// FontMeasurer implements [Measurer] with OpenType fonts via golang.org/x/image.
//
// The bundled Go fonts are registered as "go", "go-bold" and "go-mono";
// unknown families fall back to "go".
type FontMeasurer struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
}

var (
	defaultMeasurer     *FontMeasurer
	defaultMeasurerErr  error
	defaultMeasurerOnce sync.Once
)

// NewFontMeasurer creates a measurer with the bundled Go fonts registered.
func NewFontMeasurer() (*FontMeasurer, error) {
	m := &FontMeasurer{fonts: make(map[string]*opentype.Font)}
	for name, data := range map[string][]byte{
		familyGo:     goregular.TTF,
		familyGoBold: gobold.TTF,
		familyGoMono: gomono.TTF,
	} {
		if err := m.Register(name, data); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DefaultFontMeasurer returns a shared measurer with the bundled fonts.
func DefaultFontMeasurer() (*FontMeasurer, error) {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer, defaultMeasurerErr = NewFontMeasurer()
		if defaultMeasurerErr != nil {
			errors.Report(&errors.FlowError{
				Op:   "text.DefaultFontMeasurer",
				Kind: errors.KindMeasure,
				Err:  defaultMeasurerErr,
			})
		}
	})
	return defaultMeasurer, defaultMeasurerErr
}

// Register parses an OpenType/TrueType font and makes it available as family name.
func (m *FontMeasurer) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	m.fonts[strings.ToLower(name)] = f
	m.mu.Unlock()
	return nil
}

func (m *FontMeasurer) fontFor(style Style) *opentype.Font {
	m.mu.RLock()
	defer m.mu.RUnlock()

	family := strings.ToLower(style.FontFamily)
	if family == "" || family == familyGo {
		if style.FontWeight.IsBold() {
			return m.fonts[familyGoBold]
		}
		return m.fonts[familyGo]
	}
	if f, ok := m.fonts[family]; ok {
		return f
	}
	return m.fonts[familyGo]
}

// Measure implements [Measurer].
func (m *FontMeasurer) Measure(req MeasureRequest) (LineMetrics, error) {
	f := m.fontFor(req.Style)
	if f == nil {
		return LineMetrics{}, fmt.Errorf("no font registered for family %q", req.Style.FontFamily)
	}

	size := req.Style.FontSizeOrDefault()
	metrics, err := m.measureAt(f, req, size)
	if err != nil {
		return LineMetrics{}, err
	}
	if req.MaxWidth <= 0 || metrics.Width <= req.MaxWidth {
		return metrics, nil
	}

	// Shrink to fit: scale proportionally, then nudge down until the advance fits.
	minSize := size * minFontScale
	for range fitIterations {
		next := size * req.MaxWidth / metrics.Width
		if next >= size {
			next = size * 0.95
		}
		size = math.Max(next, minSize)
		metrics, err = m.measureAt(f, req, size)
		if err != nil {
			return LineMetrics{}, err
		}
		if metrics.Width <= req.MaxWidth || size == minSize {
			break
		}
	}
	return metrics, nil
}

func (m *FontMeasurer) measureAt(f *opentype.Font, req MeasureRequest, size float64) (LineMetrics, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     measureDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return LineMetrics{}, fmt.Errorf("create face at %.2f: %w", size, err)
	}
	defer face.Close()

	fm := face.Metrics()
	width := fixedToFloat(font.MeasureString(face, req.Text))
	if n := utf8.RuneCountInString(req.Text); n > 1 {
		width += req.Style.LetterSpacing * float64(n-1)
	}
	return LineMetrics{
		Ascender:  fixedToFloat(fm.Ascent),
		Descender: fixedToFloat(fm.Descent),
		Height:    fixedToFloat(fm.Height),
		Width:     width,
		FontSize:  size,
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
