package process

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names the layout of a process source.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrMalformedInput = errors.New("malformed process input")
	ErrUnknownFormat  = errors.New("unknown input format")
)

// ParseFormat resolves a format name. The empty string is accepted and
// returned as is, meaning "infer from the file name".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from the file extension. Anything that
// is not csv, json or yaml is read as whitespace separated text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Open opens the process source at path and returns it with a close func.
func Open(path string) (*os.File, func() error, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("%w: no process file given", os.ErrNotExist)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening process file: %w", err)
	}
	closeFn := func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing process file: %w", err)
		}
		return nil
	}

	return f, closeFn, nil
}

// Load reads every record from r in the given format. It does not
// validate the records; see Validate.
func Load(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatText, "":
		return loadText(r)
	case FormatCSV:
		return loadCSV(r)
	case FormatJSON:
		return loadJSON(r)
	case FormatYAML:
		return loadYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

//region Text and CSV

func loadText(r io.Reader) ([]Record, error) {
	var (
		records []Record
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseFields(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading text: %v", ErrMalformedInput, err)
	}

	return records, nil
}

func loadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformedInput, err)
	}

	records := make([]Record, 0, len(rows))
	for i := range rows {
		rec, err := parseFields(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseFields(fields []string) (Record, error) {
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("%w: want 3 fields (pid arrival burst), got %d", ErrMalformedInput, len(fields))
	}
	var vals [3]int64
	for i, s := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, s)
		}
		vals[i] = v
	}

	return Record{ID: vals[0], ArrivalTime: vals[1], BurstTime: vals[2]}, nil
}

//endregion

//region JSON and YAML

// taskFile is the document layout shared by the json and yaml sources.
// Only the task list is read: top-level simulation_time and scheduler_name
// are ignored, since the run length follows from the schedule and policies
// come from the config. Extra task fields such as period_time, quantum or
// deadline are ignored too.
type taskFile struct {
	Tasks []struct {
		ID              *int64 `json:"id" yaml:"id"`
		Offset          *int64 `json:"offset" yaml:"offset"`
		ComputationTime *int64 `json:"computation_time" yaml:"computation_time"`
	} `json:"tasks" yaml:"tasks"`
}

func (tf taskFile) records() ([]Record, error) {
	records := make([]Record, 0, len(tf.Tasks))
	for i, t := range tf.Tasks {
		if t.Offset == nil {
			return nil, fmt.Errorf("%w: task %d: missing offset", ErrMalformedInput, i)
		}
		if t.ComputationTime == nil {
			return nil, fmt.Errorf("%w: task %d: missing computation_time", ErrMalformedInput, i)
		}
		id := int64(i)
		if t.ID != nil {
			id = *t.ID
		}
		records = append(records, Record{ID: id, ArrivalTime: *t.Offset, BurstTime: *t.ComputationTime})
	}

	return records, nil
}

func loadJSON(r io.Reader) ([]Record, error) {
	var tf taskFile
	if err := json.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrMalformedInput, err)
	}

	return tf.records()
}

func loadYAML(r io.Reader) ([]Record, error) {
	var tf taskFile
	if err := yaml.NewDecoder(r).Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decoding YAML: %v", ErrMalformedInput, err)
	}

	return tf.records()
}

//endregion
