package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"go.uber.org/multierr"
)

// CSV导出：信号日志与交易流水，供客户端下载备份

// ExportSignalsCSV 导出内存信号日志，最旧在前
func (s *SignalService) ExportSignalsCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var errs error
	errs = multierr.Append(errs, w.Write([]string{"date", "time", "code", "type", "price", "score"}))
	for _, rec := range s.recorder.List() {
		errs = multierr.Append(errs, w.Write([]string{
			rec.Date,
			rec.Time,
			rec.Code,
			rec.Action,
			strconv.FormatFloat(rec.Price, 'f', 2, 64),
			strconv.Itoa(rec.Score),
		}))
	}
	w.Flush()
	if err := multierr.Append(errs, w.Error()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTradesCSV 导出内存交易流水，最旧在前
func (s *SignalService) ExportTradesCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var errs error
	errs = multierr.Append(errs, w.Write([]string{"time", "code", "action", "price", "ratio", "profit"}))
	for _, rec := range s.sim.Trades() {
		errs = multierr.Append(errs, w.Write([]string{
			rec.Time,
			rec.Code,
			rec.Action,
			strconv.FormatFloat(rec.Price, 'f', 2, 64),
			rec.Ratio,
			rec.Profit,
		}))
	}
	w.Flush()
	if err := multierr.Append(errs, w.Error()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
