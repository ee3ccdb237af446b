package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
	"github.com/kilianp07/shiftcheck/core/model"
)

// Instance is a serialized problem: an availability vector and, when known,
// the shift length it was checked against.
type Instance struct {
	ShiftLength int         `json:"shift_length,omitempty"`
	Units       model.Units `json:"units"`
}

// WriteJSON writes the instance to w in JSON format.
func WriteJSON(w io.Writer, inst Instance) error {
	enc := json.NewEncoder(w)
	return enc.Encode(inst)
}

// ReadJSON decodes an instance and rejects negative availability.
func ReadJSON(r io.Reader) (Instance, error) {
	var inst Instance
	if err := json.NewDecoder(r).Decode(&inst); err != nil {
		return Instance{}, err
	}
	if !inst.Units.Valid() {
		return Instance{}, errors.New("negative availability in instance")
	}
	return inst, nil
}

// WriteCSV writes one row per unit with a header line.
func WriteCSV(w io.Writer, inst Instance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"unit", "availability"}); err != nil {
		return err
	}
	for i, v := range inst.Units {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads the format produced by WriteCSV. Rows must be in unit order.
func ReadCSV(r io.Reader) (Instance, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return Instance{}, err
	}
	if len(rows) == 0 {
		return Instance{}, errors.New("empty csv")
	}
	units := make(model.Units, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 2 {
			return Instance{}, fmt.Errorf("row %d: expected 2 columns, got %d", i+1, len(row))
		}
		idx, err := strconv.Atoi(row[0])
		if err != nil {
			return Instance{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if idx != i {
			return Instance{}, fmt.Errorf("row %d: unit %d out of order", i+1, idx)
		}
		v, err := strconv.Atoi(row[1])
		if err != nil {
			return Instance{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if v < 0 {
			return Instance{}, fmt.Errorf("row %d: negative availability %d", i+1, v)
		}
		units = append(units, v)
	}
	return Instance{Units: units}, nil
}

// WriteFile stores the instance, choosing the format from the extension.
func WriteFile(path string, inst Instance) (err error) {
	write, err := writerFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f, inst)
}

// ReadFile loads an instance written by WriteFile.
func ReadFile(path string) (Instance, error) {
	var read func(io.Reader) (Instance, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".csv":
		read = ReadCSV
	default:
		return Instance{}, fmt.Errorf("unsupported instance format: %s", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, err
	}
	defer f.Close()
	return read(f)
}

func writerFor(path string) (func(io.Writer, Instance) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON, nil
	case ".csv":
		return WriteCSV, nil
	default:
		return nil, fmt.Errorf("unsupported instance format: %s", filepath.Ext(path))
	}
}

// WriteTrialsCSV writes trial events, one row per trial.
func WriteTrialsCSV(w io.Writer, events []coremetrics.TrialEvent) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "trial", "outcome", "reference", "candidate",
		"ref_shifts", "cand_shifts", "ref_seconds", "cand_seconds", "speedup", "ref_nodes", "cand_nodes", "time"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			e.RunID,
			strconv.Itoa(e.Trial),
			string(e.Outcome),
			e.Reference,
			e.Candidate,
			strconv.Itoa(e.RefShifts),
			strconv.Itoa(e.CandShifts),
			strconv.FormatFloat(e.RefTime.Seconds(), 'f', -1, 64),
			strconv.FormatFloat(e.CandTime.Seconds(), 'f', -1, 64),
			strconv.FormatFloat(e.Speedup, 'f', -1, 64),
			strconv.FormatInt(e.RefNodes, 10),
			strconv.FormatInt(e.CandNodes, 10),
			e.Time.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
