/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package log

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var brackets = map[Level]string{
	Trace: "[TRACE]",
	Debug: "[DEBUG]",
	Info:  "[INFO] ",
	Warn:  "[WARN] ",
	Error: "[ERROR]",
	Fatal: "[FATAL]",
}

// To allow mocking we require a switchable variable.
var osExit = os.Exit

type internalLogger struct {
	name       string
	caller     bool
	timeFormat string
	level      Level

	// This is a pointer so that it's shared by any derived loggers, since
	// those derived loggers share the output as well.
	mutex  *sync.Mutex
	writer *writer
}

func (l *internalLogger) derive(name string, level Level) Logger {
	return New(&LoggerOptions{
		Name:            name,
		Level:           level,
		Output:          l.writer.out,
		TimeFormat:      l.timeFormat,
		IncludeLocation: l.caller,
		Mutex:           l.mutex,
	})
}

func (l *internalLogger) Named(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return l.derive(name, l.level)
}

func (l *internalLogger) WithLevel(level Level) Logger {
	return l.derive(l.name, level)
}

func (l *internalLogger) GetLevel() Level {
	return l.level
}

// IsEnabled reports whether level is at least as severe as the threshold.
// Off disables everything, Fatal included.
func (l *internalLogger) IsEnabled(level Level) bool {
	if l.level == Off || level == NotSet || level == Off {
		return false
	}
	return level <= l.level
}

// output must be called directly from the public methods, the caller
// location lookup depends on it.
func (l *internalLogger) output(level Level, msg string) {
	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logPlain(tm, level, msg)
}

func (l *internalLogger) logPlain(tm time.Time, level Level, msg string) {

	// time
	l.writer.WriteString(tm.Format(l.timeFormat))

	// level
	l.writer.WriteByte(' ')
	l.writer.WriteString(levelToBracket(level))

	// caller
	if l.caller {
		if _, file, line, ok := runtime.Caller(3); ok {
			l.writer.WriteByte(' ')
			l.writer.WriteString(trimCallerPath(file))
			l.writer.WriteByte(':')
			l.writer.WriteString(strconv.Itoa(line))
			l.writer.WriteByte(':')
		}
	}

	// name
	l.writer.WriteByte(' ')
	if l.name != "" {
		l.writer.WriteString(l.name)
		l.writer.WriteString(": ")
	}

	// msg
	l.writer.WriteString(msg)

	l.writer.WriteString("\n")
	l.writer.Flush()
}

func trimCallerPath(path string) string {
	// cleanups a path by returning only the last 2 segments of the path.

	// find the last separator
	var idx int
	if idx = strings.LastIndexByte(path, '/'); idx == -1 {
		return path
	}

	// find the penultimate separator
	if idx = strings.LastIndexByte(path[:idx], '/'); idx == -1 {
		return path
	}

	return path[idx+1:]
}

func levelToBracket(level Level) string {
	s, ok := brackets[level]
	if !ok {
		s = "[?????]"
	}
	return s
}

func (l *internalLogger) Trace(msg string) {
	if l.IsEnabled(Trace) {
		l.output(Trace, msg)
	}
}

func (l *internalLogger) Tracef(format string, args ...interface{}) {
	if l.IsEnabled(Trace) {
		l.output(Trace, fmt.Sprintf(format, args...))
	}
}

func (l *internalLogger) Debug(msg string) {
	if l.IsEnabled(Debug) {
		l.output(Debug, msg)
	}
}

func (l *internalLogger) Debugf(format string, args ...interface{}) {
	if l.IsEnabled(Debug) {
		l.output(Debug, fmt.Sprintf(format, args...))
	}
}

func (l *internalLogger) Info(msg string) {
	if l.IsEnabled(Info) {
		l.output(Info, msg)
	}
}

func (l *internalLogger) Infof(format string, args ...interface{}) {
	if l.IsEnabled(Info) {
		l.output(Info, fmt.Sprintf(format, args...))
	}
}

func (l *internalLogger) Warn(msg string) {
	if l.IsEnabled(Warn) {
		l.output(Warn, msg)
	}
}

func (l *internalLogger) Warnf(format string, args ...interface{}) {
	if l.IsEnabled(Warn) {
		l.output(Warn, fmt.Sprintf(format, args...))
	}
}

func (l *internalLogger) Error(msg string) {
	if l.IsEnabled(Error) {
		l.output(Error, msg)
	}
}

func (l *internalLogger) Errorf(format string, args ...interface{}) {
	if l.IsEnabled(Error) {
		l.output(Error, fmt.Sprintf(format, args...))
	}
}

func (l *internalLogger) Fatal(msg string) {
	if l.IsEnabled(Fatal) {
		l.output(Fatal, msg)
	}
	osExit(1)
}

func (l *internalLogger) Fatalf(format string, args ...interface{}) {
	if l.IsEnabled(Fatal) {
		l.output(Fatal, fmt.Sprintf(format, args...))
	}
	osExit(1)
}
