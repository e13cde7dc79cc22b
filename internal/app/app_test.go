package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/edgecpwg/internal/config"
	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/hcl_adapter"
	"github.com/vk/edgecpwg/internal/report"
)

var documented = cpwg.Params{Gap: 0.2, Width: 0.41, GroundGap: 0.2, Thickness: 0.035, Height: 1.593, EpsilonR: 4.5}

// stubLoader returns a fixed model or error.
type stubLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (s *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	s.paths = paths
	return s.model, s.err
}

func TestRun_SingleMode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := &Config{Mode: ModeSingle, Params: documented, Output: report.Text, WorkerCount: 1}
	testApp, out, logs := SetupAppTest(t, cfg, nil)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Er_even = 2.80877", lines[0])
	require.Equal(t, "Zcomm   = 54.0414", lines[6])
	require.Contains(t, logs.String(), "Geometry reduced.")
	require.NotContains(t, out.String(), "level=", "logs must not leak into the report")
}

func TestRun_SingleModeInvalidGeometryPrintsNaN(t *testing.T) {
	t.Parallel()

	p := documented
	p.Width = -1
	cfg := &Config{Mode: ModeSingle, Params: p, Output: report.Text, WorkerCount: 1}
	testApp, out, _ := SetupAppTest(t, cfg, nil)

	require.NoError(t, testApp.Run(context.Background()))
	require.Contains(t, out.String(), "NaN")
}

func TestRun_StrictRejectsInvalidGeometry(t *testing.T) {
	t.Parallel()

	p := documented
	p.Width = 0
	cfg := &Config{Mode: ModeSingle, Params: p, Output: report.Text, WorkerCount: 1, Strict: true}
	testApp, out, _ := SetupAppTest(t, cfg, nil)

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, cpwg.ErrNonPositive)
	require.Contains(t, err.Error(), `line "cli"`)
	require.Empty(t, out.String())
}

func TestRun_BatchModeWithStubLoader(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{model: &config.Model{Lines: []*config.Line{
		{Name: "a", Params: documented},
		{Name: "b", Params: documented},
	}}}
	cfg := &Config{Mode: ModeBatch, GridPath: "lines", Output: report.Text, WorkerCount: 2}
	testApp, out, _ := SetupAppTest(t, cfg, loader)

	require.NoError(t, testApp.Run(context.Background()))
	require.Equal(t, []string{"lines"}, loader.paths)
	require.True(t, strings.HasPrefix(out.String(), "[a]\n"))
	require.Contains(t, out.String(), "\n\n[b]\n")
}

func TestRun_BatchModeLoaderError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("disk on fire")
	cfg := &Config{Mode: ModeBatch, GridPath: "lines", Output: report.Text, WorkerCount: 1}
	testApp, _, _ := SetupAppTest(t, cfg, &stubLoader{err: sentinel})

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, sentinel)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_BatchModeEmpty(t *testing.T) {
	t.Parallel()

	cfg := &Config{Mode: ModeBatch, GridPath: "lines", Output: report.JSON, WorkerCount: 1}
	testApp, out, logs := SetupAppTest(t, cfg, &stubLoader{model: &config.Model{}})

	require.NoError(t, testApp.Run(context.Background()))
	require.Empty(t, out.String())
	require.Contains(t, logs.String(), "No line definitions found")
}

func TestRun_BatchModeWithoutLoader(t *testing.T) {
	t.Parallel()

	cfg := &Config{Mode: ModeBatch, GridPath: "lines", Output: report.Text, WorkerCount: 1}
	testApp, _, _ := SetupAppTest(t, cfg, nil)

	require.Error(t, testApp.Run(context.Background()))
}

func TestRun_BatchModeHCLEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.hcl")
	err := os.WriteFile(path, []byte(`
locals {
  h = 1.593
}

line "usb3" {
  gap        = 0.2
  width      = 0.41
  ground_gap = 0.2
  thickness  = 0.035
  height     = local.h
  epsilon_r  = 4.5
}

line "broken" {
  gap        = 0.2
  width      = 0
  ground_gap = 0.2
  thickness  = 0.035
  height     = local.h
  epsilon_r  = 4.5
}
`), 0o600)
	require.NoError(t, err)

	cfg := &Config{Mode: ModeBatch, GridPath: path, Output: report.HCL, WorkerCount: 4}
	testApp, out, _ := SetupAppTest(t, cfg, hcl_adapter.NewLoader())

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `result "usb3" {`)
	require.Contains(t, out.String(), `result "broken" {`)

	// The same file is rejected in strict mode, naming the bad line.
	strictCfg := &Config{Mode: ModeBatch, GridPath: path, Output: report.HCL, WorkerCount: 4, Strict: true}
	strictApp, strictOut, _ := SetupAppTest(t, strictCfg, hcl_adapter.NewLoader())
	err = strictApp.Run(context.Background())
	require.ErrorIs(t, err, cpwg.ErrNonPositive)
	require.Contains(t, err.Error(), `line "broken"`)
	require.Empty(t, strictOut.String())
}
