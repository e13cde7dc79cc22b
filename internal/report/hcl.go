package report

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/executor"
)

// writeHCL emits one block per evaluation:
//
//	result "usb3" {
//	  Er_even = 2.8087735780177487
//	  ...
//	  inputs {
//	    d = 0.2
//	    ...
//	  }
//	}
func (w *Writer) writeHCL(evals []executor.Evaluation) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, ev := range evals {
		if i > 0 {
			root.AppendNewline()
		}
		block := root.AppendNewBlock("result", []string{ev.Line.Name})
		body := block.Body()
		setAttributes(body, ev.Result.Outputs())
		body.AppendNewline()
		setAttributes(body.AppendNewBlock("inputs", nil).Body(), ev.Line.Params.Inputs())
	}

	_, err := w.out.Write(hclwrite.Format(f.Bytes()))
	return err
}

func setAttributes(body *hclwrite.Body, outs []cpwg.Output) {
	for _, o := range outs {
		body.SetAttributeValue(o.Name, ctyNumber(o.Value))
	}
}
