package main

import (
	"encoding/csv"
	"os"
	"sync"

	"github.com/neex/h2fields"
)

type CSVHeaderWriter struct {
	m sync.Mutex

	headerWritten bool
	f             *os.File
	w             *csv.Writer
}

func NewCSVHeaderWriter(filename string) (*CSVHeaderWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	return &CSVHeaderWriter{
		f: f,
		w: w,
	}, nil
}

func (w *CSVHeaderWriter) Log(headers h2fields.Headers) error {
	w.m.Lock()
	defer w.m.Unlock()

	if !w.headerWritten {
		if err := w.w.Write([]string{"name", "value"}); err != nil {
			return err
		}
		w.headerWritten = true
	}
	for _, h := range headers {
		if err := w.w.Write([]string{string(h.Name()), string(h.Value())}); err != nil {
			return err
		}
	}

	return nil
}

func (w *CSVHeaderWriter) Close() error {
	w.m.Lock()
	defer w.m.Unlock()

	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return err
	}
	if err := w.f.Close(); err != nil {
		return err
	}
	return nil
}
