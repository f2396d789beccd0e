// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ringtest provides testing helpers for packages built on ring
// buffers.
package ringtest

import (
	"fmt"
	"runtime"
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LogRecord is a single log entry emitted by a ring buffer or a type built
// on one.
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// FieldMap returns the record's fields, keyed by name, as encoded by a
// [zapcore.MapObjectEncoder]. Note that [zap.Int] fields are encoded as int64.
func (r *LogRecord) FieldMap() map[string]any {
	return encode(r.Fields)
}

// Int returns the value of the named integer field, as logged for indices,
// lengths and capacities. It panics if there is no such integer field.
func (r *LogRecord) Int(key string) int {
	v, ok := r.FieldMap()[key].(int64)
	if !ok {
		panic(fmt.Sprintf("log %q has no integer field %q", r.Msg, key))
	}
	return int(v)
}

func encode(fields []zap.Field) map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

// emitter implements [logging.Logger] by passing every entry at or above its
// level to `emit`. Methods not overridden here panic via the nil embedded
// interface, which is preferable to a [logging.NoLog] silently dropping them.
type emitter struct {
	logging.Logger
	level  logging.Level
	fields []zap.Field
	emit   func(*LogRecord)
}

var _ logging.Logger = (*emitter)(nil)

func (e *emitter) With(fields ...zap.Field) logging.Logger {
	child := *e
	child.fields = slices.Concat(e.fields, fields)
	return &child
}

func (e *emitter) entry(lvl logging.Level, msg string, fields []zap.Field) {
	if lvl < e.level {
		return
	}
	e.emit(&LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: slices.Concat(e.fields, fields),
	})
}

func (e *emitter) Verbo(msg string, fs ...zap.Field) { e.entry(logging.Verbo, msg, fs) }
func (e *emitter) Debug(msg string, fs ...zap.Field) { e.entry(logging.Debug, msg, fs) }
func (e *emitter) Trace(msg string, fs ...zap.Field) { e.entry(logging.Trace, msg, fs) }
func (e *emitter) Info(msg string, fs ...zap.Field)  { e.entry(logging.Info, msg, fs) }
func (e *emitter) Warn(msg string, fs ...zap.Field)  { e.entry(logging.Warn, msg, fs) }
func (e *emitter) Error(msg string, fs ...zap.Field) { e.entry(logging.Error, msg, fs) }
func (e *emitter) Fatal(msg string, fs ...zap.Field) { e.entry(logging.Fatal, msg, fs) }

// A LogRecorder is a [logging.Logger] that keeps every entry for inspection,
// typically to assert that a buffer reported a denied or invalid operation.
type LogRecorder struct {
	*emitter
	Records []*LogRecord
}

// NewLogRecorder returns a [LogRecorder] that keeps entries at or above
// `level`.
func NewLogRecorder(level logging.Level) *LogRecorder {
	rec := new(LogRecorder)
	rec.emitter = &emitter{
		level: level,
		emit: func(r *LogRecord) {
			rec.Records = append(rec.Records, r)
		},
	}
	return rec
}

// Filter returns the recorded entries for which `fn` returns true.
func (l *LogRecorder) Filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range l.Records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns the recorded entries at exactly `lvl`.
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level == lvl })
}

// AtLeast returns the recorded entries at or above `lvl`.
func (l *LogRecorder) AtLeast(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level >= lvl })
}

// WithMsg returns the recorded entries with message `msg`.
func (l *LogRecorder) WithMsg(msg string) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Msg == msg })
}

// NewTBLogger returns a [logging.Logger] that reports to `tb`. WARN and ERROR
// entries fail the test via [testing.TB.Errorf], FATAL via
// [testing.TB.Fatalf], and everything else goes to [testing.TB.Logf]. The
// level is capped at [logging.Warn] so that failures are never hidden.
//
// It is only appropriate when every buffer operation under test is expected to
// succeed; use a [LogRecorder] to inspect expected failures.
//
//nolint:thelper // The logging site, reported below, is more useful than the TB site
func NewTBLogger(tb testing.TB, level logging.Level) logging.Logger {
	return &emitter{
		level: min(level, logging.Warn),
		emit: func(r *LogRecord) {
			to := tb.Logf
			switch {
			case r.Level >= logging.Fatal:
				to = tb.Fatalf
			case r.Level >= logging.Warn:
				to = tb.Errorf
			}
			// 0: this closure, 1: entry(), 2: Warn() etc., 3: the logging site.
			_, file, line, _ := runtime.Caller(3)
			to("[Log@%s] %s %v - %s:%d", r.Level, r.Msg, encode(r.Fields), file, line)
		},
	}
}
