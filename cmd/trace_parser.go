package cmd

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	sim "github.com/capacity-sim/capacity-sim/sim"
)

// traceColumns is the required CSV header of an arrival trace:
// one row per task, times in seconds (fractions allowed, rounded to ticks).
var traceColumns = []string{"user_id", "request_time", "processing_time"}

// ParseTraceCSV loads an arrival trace into simulation tasks.
// Arrival order within the file is preserved; ties at equal arrival times
// are resolved by the engine's deterministic event ordering.
func ParseTraceCSV(filePath string) ([]*sim.Task, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trace file %s: %w", filePath, err)
	}
	if len(rows) == 0 {
		return []*sim.Task{}, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range traceColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("trace file %s: missing required column %q", filePath, name)
		}
	}

	tasks := make([]*sim.Task, 0, len(rows)-1)
	for lineNo, row := range rows[1:] {
		arrival, err := parseTicks(row[col["request_time"]])
		if err != nil {
			return nil, fmt.Errorf("trace file %s line %d: bad request_time: %w", filePath, lineNo+2, err)
		}
		duration, err := parseTicks(row[col["processing_time"]])
		if err != nil {
			return nil, fmt.Errorf("trace file %s line %d: bad processing_time: %w", filePath, lineNo+2, err)
		}
		tasks = append(tasks, &sim.Task{
			ID:              row[col["user_id"]],
			ArrivalTime:     arrival,
			ServiceDuration: duration,
			State:           sim.StateArrived,
		})
	}
	return tasks, nil
}

// parseTicks converts a seconds value (possibly fractional) to integer ticks.
func parseTicks(s string) (int64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(v)), nil
}

// WriteTraceCSV writes tasks as an arrival trace readable by ParseTraceCSV.
func WriteTraceCSV(filePath string, tasks []*sim.Task) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(traceColumns); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			t.ID,
			strconv.FormatInt(t.ArrivalTime, 10),
			strconv.FormatInt(t.ServiceDuration, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing trace row for %s: %w", t.ID, err)
		}
	}
	return nil
}
