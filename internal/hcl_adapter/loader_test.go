package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sweepgridgo/internal/sweep"
)

// writeSweepFile writes content into a fresh temp directory and returns the
// file path.
func writeSweepFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullSweep(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, "main.hcl", `
		sweep "decoherence" {
			scheduler = "pbs"
			script    = "jobs/decoherence.sh"
			order     = ["c", "a"]

			fields {
				memory   = 8
				job_name = "abc_sweep"
				rate     = 0.5
				verbose  = true
			}

			param "a" {
				values = [1, 2, 3]
			}

			param "c" {
				range {
					from = 7
					to   = 10
				}
			}
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Sweeps, 1)

	sw := model.Sweeps[0]
	require.Equal(t, "decoherence", sw.Name)
	require.Equal(t, "pbs", sw.Scheduler)
	require.Equal(t, "jobs/decoherence.sh", sw.Script)
	require.Equal(t, []string{"c", "a"}, sw.Order)
	require.Equal(t, path, sw.Source)

	require.Equal(t, int64(8), sw.Fields["memory"])
	require.Equal(t, "abc_sweep", sw.Fields["job_name"])
	require.Equal(t, 0.5, sw.Fields["rate"])
	require.Equal(t, true, sw.Fields["verbose"])

	require.Len(t, sw.Params, 2)
	require.Equal(t, "a", sw.Params[0].Name)
	list, ok := sw.Params[0].Values.(sweep.List)
	require.True(t, ok, "param a should hold an explicit list")
	require.Equal(t, 3, list.Len())

	require.Equal(t, "c", sw.Params[1].Name)
	rng, ok := sw.Params[1].Values.(sweep.Range)
	require.True(t, ok, "param c should hold a range")
	require.Equal(t, sweep.Range{From: 7, To: 10, Step: 1}, rng)
}

func TestLoad_MinimalSweepGetsDefaults(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, "main.hcl", `
		sweep "tiny" {
			param "a" {
				values = ["x"]
			}
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Sweeps, 1)

	sw := model.Sweeps[0]
	require.Equal(t, "slurm", sw.EffectiveScheduler())
	require.Equal(t, "tiny.sh", sw.ScriptName())
	require.Empty(t, sw.Order)
	require.Empty(t, sw.Fields)
}

func TestLoad_ExplicitRangeStep(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, "main.hcl", `
		sweep "strided" {
			param "n" {
				range {
					from = 0
					to   = 10
					step = 3
				}
			}
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	rng, ok := model.Sweeps[0].Params[0].Values.(sweep.Range)
	require.True(t, ok)
	require.Equal(t, sweep.Range{From: 0, To: 10, Step: 3}, rng)
	require.Equal(t, 4, rng.Len())
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		hcl         string
		errContains string
	}{
		{
			name:        "syntax error",
			hcl:         `sweep "broken" {`,
			errContains: "failed to parse",
		},
		{
			name: "unsupported sweep argument",
			hcl: `
				sweep "s" {
					bogus = 1
					param "a" { values = [1] }
				}
			`,
			errContains: "Unsupported argument",
		},
		{
			name: "values and range together",
			hcl: `
				sweep "s" {
					param "a" {
						values = [1]
						range {
							from = 0
							to   = 2
						}
					}
				}
			`,
			errContains: "Conflicting value sources",
		},
		{
			name: "neither values nor range",
			hcl: `
				sweep "s" {
					param "a" {}
				}
			`,
			errContains: "Missing value source",
		},
		{
			name: "duplicate range blocks",
			hcl: `
				sweep "s" {
					param "a" {
						range {
							from = 0
							to   = 2
						}
						range {
							from = 2
							to   = 4
						}
					}
				}
			`,
			errContains: "Duplicate",
		},
		{
			name: "non-literal values",
			hcl: `
				sweep "s" {
					param "a" {
						values = [foo.bar]
					}
				}
			`,
			errContains: "literal",
		},
		{
			name: "scalar values attribute",
			hcl: `
				sweep "s" {
					param "a" {
						values = 5
					}
				}
			`,
			errContains: "must be a list of scalars",
		},
		{
			name: "nested list element",
			hcl: `
				sweep "s" {
					param "a" {
						values = [[1, 2]]
					}
				}
			`,
			errContains: "numbers, strings, or booleans",
		},
		{
			name: "null element",
			hcl: `
				sweep "s" {
					param "a" {
						values = [null]
					}
				}
			`,
			errContains: "numbers, strings, or booleans",
		},
		{
			name: "empty values list",
			hcl: `
				sweep "s" {
					param "a" {
						values = []
					}
				}
			`,
			errContains: "at least one element",
		},
		{
			name: "zero range step",
			hcl: `
				sweep "s" {
					param "a" {
						range {
							from = 0
							to   = 10
							step = 0
						}
					}
				}
			`,
			errContains: "Invalid range",
		},
		{
			name: "empty range",
			hcl: `
				sweep "s" {
					param "a" {
						range {
							from = 5
							to   = 5
						}
					}
				}
			`,
			errContains: "enumerates no values",
		},
		{
			name: "sweep without params",
			hcl: `
				sweep "s" {
				}
			`,
			errContains: "at least one param block",
		},
		{
			name: "invalid param name",
			hcl: `
				sweep "s" {
					param "not-a-var" {
						values = [1]
					}
				}
			`,
			errContains: "not a valid shell identifier",
		},
		{
			name: "duplicate param blocks",
			hcl: `
				sweep "s" {
					param "a" {
						values = [1]
					}
					param "a" {
						values = [2]
					}
				}
			`,
			errContains: "declared more than once",
		},
		{
			name: "duplicate sweep labels in one file",
			hcl: `
				sweep "s" {
					param "a" { values = [1] }
				}
				sweep "s" {
					param "b" { values = [2] }
				}
			`,
			errContains: "duplicate sweep name",
		},
		{
			name: "non-literal field value",
			hcl: `
				sweep "s" {
					fields {
						memory = var.memory
					}
					param "a" { values = [1] }
				}
			`,
			errContains: "must be a literal value",
		},
		{
			name: "object field value",
			hcl: `
				sweep "s" {
					fields {
						extra = { nested = 1 }
					}
					param "a" { values = [1] }
				}
			`,
			errContains: "unsupported field type",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeSweepFile(t, "main.hcl", tc.hcl)

			_, err := NewLoader().Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_DuplicateSweepAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.hcl")
	second := filepath.Join(dir, "second.hcl")
	content := `
		sweep "same" {
			param "a" { values = [1] }
		}
	`
	require.NoError(t, os.WriteFile(first, []byte(content), 0644))
	require.NoError(t, os.WriteFile(second, []byte(content), 0644))

	_, err := NewLoader().Load(context.Background(), first, second)

	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate sweep name")
	require.Contains(t, err.Error(), "first.hcl")
	require.Contains(t, err.Error(), "second.hcl")
}

func TestLoad_MultipleSweepsKeepFileOrder(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, "main.hcl", `
		sweep "one" {
			param "a" { values = [1] }
		}
		sweep "two" {
			param "b" { values = [2] }
		}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, model.Sweeps, 2)
	require.Equal(t, "one", model.Sweeps[0].Name)
	require.Equal(t, "two", model.Sweeps[1].Name)
}
