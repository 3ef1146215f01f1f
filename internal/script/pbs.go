// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// The PBS Pro dialect. PBS publishes the task index as PBS_ARRAY_INDEX and
// starts jobs in the home directory, hence the cd into PBS_O_WORKDIR. PBS
// has no day component in walltime and queues take the place of
// reservations.
package script

const pbsTemplate = `#!/bin/env bash

#PBS -J 0-{{.num_jobs}}
#PBS -N {{.job_name}}
#PBS -o {{.output}}
#PBS -j oe
#PBS -l select={{.num_nodes}}:ncpus={{.num_cpus}}:mem={{.memory}}{{.memory_unit}}
#PBS -l walltime={{.time_h}}:{{.time_m}}:{{.time_s}}
#PBS -q {{.queue}}

{{.param_arr_init}}

trial=${PBS_ARRAY_INDEX}
{{.param_val_assign}}

cd ${PBS_O_WORKDIR}
export OMP_NUM_THREADS={{.num_cpus}}
export OMP_PROC_BIND=spread

## use {{.param_list}} below
`

func pbsDefaults() map[string]any {
	return map[string]any{
		"memory":      64,
		"memory_unit": "gb",
		"num_nodes":   1,
		"num_cpus":    16,
		"time_h":      0,
		"time_m":      0,
		"time_s":      0,
		"queue":       "workq",
		"job_name":    "myjob",
		"output":      "output.txt",
	}
}

func init() {
	Register(NewDialect("pbs", pbsTemplate, pbsDefaults()))
}
