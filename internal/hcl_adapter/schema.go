package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/edgecpwg/internal/cpwg"
)

// fileRoot is the top level of a line definition file.
//
//	locals {
//	  h = 1.593
//	}
//
//	line "usb3" {
//	  gap        = 0.2
//	  width      = 0.41
//	  ground_gap = 0.2
//	  thickness  = 0.035
//	  height     = local.h
//	  epsilon_r  = 4.5
//	}
type fileRoot struct {
	Locals []*localsBlock `hcl:"locals,block"`
	Lines  []*lineBlock   `hcl:"line,block"`
}

// localsBlock holds named values usable as local.<name> in the same file.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// lineBlock is one `line "<name>"` block.
type lineBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// lineAttributes is the decoded body of a line block. All attributes are required.
type lineAttributes struct {
	Gap       float64 `hcl:"gap"`
	Width     float64 `hcl:"width"`
	GroundGap float64 `hcl:"ground_gap"`
	Thickness float64 `hcl:"thickness"`
	Height    float64 `hcl:"height"`
	EpsilonR  float64 `hcl:"epsilon_r"`
}

func (a lineAttributes) params() cpwg.Params {
	return cpwg.Params{
		Gap:       a.Gap,
		Width:     a.Width,
		GroundGap: a.GroundGap,
		Thickness: a.Thickness,
		Height:    a.Height,
		EpsilonR:  a.EpsilonR,
	}
}

// bodyRange returns the source range of a native-syntax body, falling back
// to the position HCL would report for a missing item.
func bodyRange(body hcl.Body) hcl.Range {
	if sb, ok := body.(*hclsyntax.Body); ok {
		return sb.SrcRange
	}
	return body.MissingItemRange()
}
