package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_KnownDialects(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"slurm", "pbs"} {
		d, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, d.Name)
	}
}

func TestLookup_UnknownSchedulerNamesRegisteredOnes(t *testing.T) {
	t.Parallel()

	_, err := Lookup("lsf")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownScheduler)
	require.Contains(t, err.Error(), `"lsf"`)
	require.Contains(t, err.Error(), "slurm")
}

func TestRegister_DuplicateNamePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		Register(NewDialect("slurm", "duplicate", nil))
	})
}

func TestNewDialect_InvalidTemplatePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewDialect("broken", "{{.unclosed", nil)
	})
}

func TestDialect_FieldSetFromTemplateTree(t *testing.T) {
	t.Parallel()

	d := NewDialect("fieldprobe", `
#DIRECTIVE --name={{.job_name}}
{{if .verbose}}{{.banner}}{{else}}{{.quiet_banner}}{{end}}
{{range .items}}item{{end}}
trial=${SCHEDULER_TASK_ID}
`, nil)

	require.Equal(t, []string{"banner", "items", "job_name", "quiet_banner", "verbose"}, d.Fields())

	require.True(t, d.HasField("job_name"))
	require.True(t, d.HasField("quiet_banner"))
	require.False(t, d.HasField("bogus_field"))
	// Bash runtime references are not template fields.
	require.False(t, d.HasField("SCHEDULER_TASK_ID"))
}

func TestSlurmDialect_ReferencesEveryDefaultField(t *testing.T) {
	t.Parallel()

	d, err := Lookup("slurm")
	require.NoError(t, err)

	for field := range d.Defaults {
		require.True(t, d.HasField(field), "default field %q is not referenced by the slurm template", field)
	}
	for _, computed := range []string{"num_jobs", "param_arr_init", "param_val_assign", "param_list"} {
		require.True(t, d.HasField(computed), "computed field %q is not referenced by the slurm template", computed)
	}
}

func TestDialect_ExecuteRejectsMissingField(t *testing.T) {
	t.Parallel()

	d := NewDialect("strict", "value={{.present}} and {{.absent}}", nil)

	var buf bytes.Buffer
	err := d.Execute(&buf, map[string]any{"present": 1})

	require.Error(t, err)
	require.Contains(t, err.Error(), "absent")
}
