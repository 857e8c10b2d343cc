package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/rotisserie/eris"
)

// readRecords decodes a record export. JSON input is either an array of
// objects or an object with a "records" array. CSV input has a header row;
// empty cells are left out of the record.
func readRecords(r io.Reader, format string) ([]domain.RawRecord, error) {
	switch strings.ToLower(format) {
	case "json":
		return readJSON(r)
	case "csv":
		return readCSV(r)
	default:
		return nil, eris.Wrapf(domain.ErrInvalidInput, "unsupported input format %q", format)
	}
}

func readJSON(r io.Reader) ([]domain.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "read input")
	}
	data = bytes.TrimSpace(data)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if len(data) > 0 && data[0] == '{' {
		var wrapped domain.IngestRecordsRequest
		if err := dec.Decode(&wrapped); err != nil {
			return nil, eris.Wrap(err, "decode json")
		}
		return wrapped.Records, nil
	}

	var records []domain.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, eris.Wrap(err, "decode json")
	}
	return records, nil
}

func readCSV(r io.Reader) ([]domain.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "read csv header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read csv row")
		}
		rec := make(domain.RawRecord, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			rec[header[i]] = cell
		}
		records = append(records, rec)
	}
	return records, nil
}
