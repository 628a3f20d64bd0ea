package experiments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"supergame/game"
)

var subjectHeader = []string{"subject", "period", "action", "own"}

// LoadSubjects reads a CSV observation table with the columns subject,
// period and action, plus an optional own column. Rows of one subject must
// be in play order; subjects are returned in order of first appearance.
func LoadSubjects(r io.Reader) ([]Subject, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range subjectHeader[:3] {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing %q column", game.ErrMalformedInput, name)
		}
	}
	ownColumn, hasOwn := columns["own"]

	var subjects []*Subject
	byID := make(map[string]*Subject)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		id := record[columns["subject"]]
		period, err := strconv.Atoi(strings.TrimSpace(record[columns["period"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: period %q", game.ErrMalformedInput, line, record[columns["period"]])
		}
		action, err := game.ParseAction(record[columns["action"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		subject, ok := byID[id]
		if !ok {
			subject = &Subject{ID: id}
			byID[id] = subject
			subjects = append(subjects, subject)
		}
		subject.History.Actions = append(subject.History.Actions, action)
		subject.History.Periods = append(subject.History.Periods, period)

		if hasOwn {
			own, err := game.ParseAction(record[ownColumn])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			subject.Own = append(subject.Own, own)
		}
	}

	out := make([]Subject, len(subjects))
	for i, subject := range subjects {
		if err := subject.Validate(); err != nil {
			return nil, fmt.Errorf("subject %s: %w", subject.ID, err)
		}
		out[i] = *subject
	}
	return out, nil
}

// WriteSubjects writes subjects in the format LoadSubjects reads. The own
// column is written when any subject has own play.
func WriteSubjects(w io.Writer, subjects []Subject) error {
	withOwn := false
	for _, subject := range subjects {
		if subject.Own != nil {
			withOwn = true
			break
		}
	}

	writer := csv.NewWriter(w)
	header := subjectHeader
	if !withOwn {
		header = subjectHeader[:3]
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write subjects header: %w", err)
	}

	for _, subject := range subjects {
		for t := 0; t < subject.History.Len(); t++ {
			row := []string{
				subject.ID,
				strconv.Itoa(subject.History.Periods[t]),
				subject.History.Actions[t].String(),
			}
			if withOwn {
				own := game.Missing
				if subject.Own != nil {
					own = subject.Own[t]
				}
				row = append(row, own.String())
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write subject row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush subjects: %w", err)
	}
	return nil
}
