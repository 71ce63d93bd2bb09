package process

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeProcesses = []Record{
	{ID: 1, ArrivalTime: 0, BurstTime: 5},
	{ID: 2, ArrivalTime: 1, BurstTime: 3},
	{ID: 3, ArrivalTime: 2, BurstTime: 8},
}

func TestLoad(t *testing.T) {
	t.Parallel()
	type args struct {
		r      io.Reader
		format Format
	}
	tests := []struct {
		name    string
		args    args
		want    []Record
		wantErr error
	}{
		{
			name: "text",
			args: args{
				r:      strings.NewReader("1 0 5\n2 1 3\n3 2 8\n"),
				format: FormatText,
			},
			want: threeProcesses,
		},
		{
			name: "text with blanks and comments",
			args: args{
				r:      strings.NewReader("# pid arrival burst\n\n1\t0\t5\n   2 1 3\n3 2 8"),
				format: FormatText,
			},
			want: threeProcesses,
		},
		{
			name: "empty format reads text",
			args: args{
				r: strings.NewReader("1 0 5\n2 1 3\n3 2 8\n"),
			},
			want: threeProcesses,
		},
		{
			name: "text too few fields",
			args: args{
				r:      strings.NewReader("1 0 5\n2 1\n"),
				format: FormatText,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "text not a number",
			args: args{
				r:      strings.NewReader("1 zero 5\n"),
				format: FormatText,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "bad text reader",
			args: args{
				r:      iotest.ErrReader(io.ErrUnexpectedEOF),
				format: FormatText,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "csv",
			args: args{
				r: strings.NewReader(`1,0,5
2, 1, 3
3,2,8`),
				format: FormatCSV,
			},
			want: threeProcesses,
		},
		{
			name: "bad CSV",
			args: args{
				r:      iotest.ErrReader(io.ErrUnexpectedEOF),
				format: FormatCSV,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "csv wrong width",
			args: args{
				r:      strings.NewReader("1,0,5,2\n"),
				format: FormatCSV,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "json with ids",
			args: args{
				r: strings.NewReader(`{"tasks": [
					{"id": 1, "offset": 0, "computation_time": 5},
					{"id": 2, "offset": 1, "computation_time": 3},
					{"id": 3, "offset": 2, "computation_time": 8, "deadline": 20}
				]}`),
				format: FormatJSON,
			},
			want: threeProcesses,
		},
		{
			name: "json run settings are ignored",
			args: args{
				r: strings.NewReader(`{"simulation_time": 40, "scheduler_name": "SJF", "tasks": [
					{"offset": 0, "computation_time": 5, "period_time": 10, "quantum": 2, "deadline": 9}
				]}`),
				format: FormatJSON,
			},
			want: []Record{{ID: 0, ArrivalTime: 0, BurstTime: 5}},
		},
		{
			name: "yaml run settings are ignored",
			args: args{
				r: strings.NewReader("simulation_time: 40\nscheduler_name: FCFS\ntasks:\n  - {offset: 2, computation_time: 3}\n"),
				format: FormatYAML,
			},
			want: []Record{{ID: 0, ArrivalTime: 2, BurstTime: 3}},
		},
		{
			name: "json ids default to index",
			args: args{
				r:      strings.NewReader(`{"tasks": [{"offset": 0, "computation_time": 4}, {"offset": 2, "computation_time": 1}]}`),
				format: FormatJSON,
			},
			want: []Record{
				{ID: 0, ArrivalTime: 0, BurstTime: 4},
				{ID: 1, ArrivalTime: 2, BurstTime: 1},
			},
		},
		{
			name: "json missing field",
			args: args{
				r:      strings.NewReader(`{"tasks": [{"offset": 0}]}`),
				format: FormatJSON,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "json syntax error",
			args: args{
				r:      strings.NewReader(`{"tasks": [`),
				format: FormatJSON,
			},
			wantErr: ErrMalformedInput,
		},
		{
			name: "yaml",
			args: args{
				r: strings.NewReader(`tasks:
  - {id: 1, offset: 0, computation_time: 5}
  - {id: 2, offset: 1, computation_time: 3}
  - {id: 3, offset: 2, computation_time: 8}
`),
				format: FormatYAML,
			},
			want: threeProcesses,
		},
		{
			name: "empty yaml",
			args: args{
				r:      strings.NewReader(""),
				format: FormatYAML,
			},
			want: []Record{},
		},
		{
			name: "unknown format",
			args: args{
				r:      strings.NewReader("1 0 5"),
				format: Format("xml"),
			},
			wantErr: ErrUnknownFormat,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(tt.args.r, tt.args.format)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	tests := map[string]Format{
		"processos.txt":      FormatText,
		"processes":          FormatText,
		"in/processes.CSV":   FormatCSV,
		"file.json":          FormatJSON,
		"tasks.yaml":         FormatYAML,
		"tasks.yml":          FormatYAML,
		"archive.tar.gz.csv": FormatCSV,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]Format{"": "", "TEXT": FormatText, " csv ": FormatCSV, "json": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "processes.txt")
	require.NoError(t, os.WriteFile(good, []byte("1 0 5\n"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "success", path: good},
		{name: "no path", path: "", wantErr: true},
		{name: "bad file", path: filepath.Join(dir, "bad_file_name"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, closeFn, err := Open(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, os.ErrNotExist)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			require.NotNil(t, closeFn)

			records, err := Load(got, FormatText)
			require.NoError(t, err)
			assert.Equal(t, []Record{{ID: 1, ArrivalTime: 0, BurstTime: 5}}, records)
			require.NoError(t, closeFn())
			assert.Error(t, closeFn(), "second close should fail")
		})
	}
}
