package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vk/edgecpwg/internal/executor"
	"github.com/zclconf/go-cty/cty"
)

// Format selects the report encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	HCL  Format = "hcl"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, HCL:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text', 'json' or 'hcl'", s)
	}
}

// Writer renders evaluations to an io.Writer.
type Writer struct {
	out    io.Writer
	format Format
	named  bool
}

// NewWriter returns a Writer for format. When named is false the text format
// omits the per-line "[name]" header, giving the bare seven-line report.
func NewWriter(out io.Writer, format Format, named bool) *Writer {
	return &Writer{out: out, format: format, named: named}
}

// Write renders all evaluations in order.
func (w *Writer) Write(evals []executor.Evaluation) error {
	switch w.format {
	case Text:
		return w.writeText(evals)
	case JSON:
		return w.writeJSON(evals)
	case HCL:
		return w.writeHCL(evals)
	default:
		return fmt.Errorf("unsupported output format %q", w.format)
	}
}

func (w *Writer) writeText(evals []executor.Evaluation) error {
	var b strings.Builder
	for i, ev := range evals {
		if w.named {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "[%s]\n", ev.Line.Name)
		}
		for _, out := range ev.Result.Outputs() {
			fmt.Fprintf(&b, "%-7s = %s\n", out.Name, FormatValue(out.Value))
		}
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

// FormatValue prints v with six significant digits, like a default C++ stream.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ctyNumber converts v to a cty number, or to a string for NaN and ±Inf.
func ctyNumber(v float64) cty.Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cty.StringVal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return cty.NumberFloatVal(v)
}
