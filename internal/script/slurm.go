// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// The SLURM dialect. SLURM hands each task its index in
// SLURM_ARRAY_TASK_ID, and the --array directive's upper bound is
// inclusive, so num_jobs is the combination count minus one.
package script

const slurmTemplate = `#!/bin/env bash

#SBATCH --array=0-{{.num_jobs}}
#SBATCH --job-name={{.job_name}}
#SBATCH --output={{.output}}
#SBATCH --mem={{.memory}}{{.memory_unit}}
#SBATCH --time={{.time_d}}-{{.time_h}}:{{.time_m}}:{{.time_s}}
#SBATCH --nodes={{.num_nodes}}
#SBATCH --cpus-per-task={{.num_cpus}}
#SBATCH --reservation={{.reserve}}

{{.param_arr_init}}

trial=${SLURM_ARRAY_TASK_ID}
{{.param_val_assign}}

source ../../prep.sh
export OMP_NUM_THREADS={{.num_cpus}}
export OMP_PROC_BIND=spread

## use {{.param_list}} below
`

// slurmDefaults are assumed for any template field the caller leaves out.
func slurmDefaults() map[string]any {
	return map[string]any{
		"memory":      64,
		"memory_unit": "GB",
		"num_nodes":   1,
		"num_cpus":    16,
		"time_d":      0,
		"time_h":      0,
		"time_m":      0,
		"time_s":      0,
		"reserve":     "nqit",
		"job_name":    "myjob",
		"output":      "output.txt",
	}
}

func init() {
	Register(NewDialect("slurm", slurmTemplate, slurmDefaults()))
}
