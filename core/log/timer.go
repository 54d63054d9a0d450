// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it on Stop.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14

package log

import "time"

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
}

// StartTimer starts timing operation
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now()}
}

// Stop logs the elapsed time at debug level and returns it
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := time.Since(t.start)
	all := append([]Fields{{"operation": t.operation, "duration": elapsed.String()}}, fields...)
	t.logger.log(LevelDebug, "operation completed", nil, all...)
	return elapsed
}
