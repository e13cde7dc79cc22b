package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/executor"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func (w *Writer) writeJSON(evals []executor.Evaluation) error {
	items := make([]cty.Value, 0, len(evals))
	for _, ev := range evals {
		items = append(items, cty.ObjectVal(map[string]cty.Value{
			"name":    cty.StringVal(ev.Line.Name),
			"inputs":  outputsObject(ev.Line.Params.Inputs()),
			"outputs": outputsObject(ev.Result.Outputs()),
		}))
	}

	val := cty.EmptyTupleVal
	if len(items) > 0 {
		val = cty.TupleVal(items)
	}

	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent JSON report: %w", err)
	}
	pretty.WriteByte('\n')

	_, err = w.out.Write(pretty.Bytes())
	return err
}

func outputsObject(outs []cpwg.Output) cty.Value {
	attrs := make(map[string]cty.Value, len(outs))
	for _, o := range outs {
		attrs[o.Name] = ctyNumber(o.Value)
	}
	return cty.ObjectVal(attrs)
}
