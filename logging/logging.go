package logging

import (
	"context"
	"fmt"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/fh"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"os/user"
	"runtime/trace"
)

const (
	DefaultLevel      = logrus.InfoLevel
	DefaultFormat     = "text"
	DefaultTimeFormat = "2006-01-02 15:04:05.000000"
)

var (
	logFile   *os.File
	traceFile *os.File
)

// Initialize points logrus at logFilePath (os.Stdout if empty).
// Tracing is on if level == trace.
func Initialize(ctx context.Context, logFilePath, level, format, traceFilePath string, usr *user.User) errs.Error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errs.E(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid log level [%s]: %w", level, err))
	}
	var formatter logrus.Formatter
	switch format {
	case "text":
		formatter = &logrus.TextFormatter{DisableTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{DisableTimestamp: true}
	default:
		return errs.E(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid log format [%s]: supported text, json", format))
	}

	var out io.Writer = os.Stdout
	if logFilePath != "" {
		if logFilePath, err = fh.ResolvePath(logFilePath, usr); err != nil {
			return errs.E(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid log file [%s]: %w", logFilePath, err))
		}
		if logFile, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return errs.E(ctx, errs.SeverityCritical, errs.KindOpenFile, fmt.Errorf("open log file [%s] failed: %w", logFilePath, err))
		}
		out = logFile
	}
	logrus.SetOutput(out)
	logrus.SetFormatter(formatter)
	logrus.SetLevel(lvl)

	if lvl == logrus.TraceLevel && traceFilePath != "" {
		if traceFilePath, err = fh.ResolvePath(traceFilePath, usr); err != nil {
			return errs.E(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid trace file [%s]: %w", traceFilePath, err))
		}
		if traceFile, err = os.Create(traceFilePath); err != nil {
			return errs.E(ctx, errs.SeverityCritical, errs.KindOpenFile, fmt.Errorf("create trace file [%s] failed: %w", traceFilePath, err))
		}
		if err = trace.Start(traceFile); err != nil {
			_ = traceFile.Close()
			traceFile = nil
			return errs.E(ctx, errs.SeverityCritical, errs.KindInternal, fmt.Errorf("trace start failed: %w", err))
		}
		Msg(ctx).Tracef("tracing to [%s]", traceFilePath)
	}
	return nil
}

// Finalize stops tracing and closes the log file; logrus falls back to os.Stderr.
func Finalize() {
	if traceFile != nil {
		trace.Stop()
		_ = traceFile.Close()
		traceFile = nil
	}
	if logFile != nil {
		logrus.SetOutput(os.Stderr)
		_ = logFile.Close()
		logFile = nil
	}
}

// LogError builds errs.Error from args (see errs.E) and logs it with the level of its severity.
// At trace level the "at" field names the caller of LogError (or the origin of a passed errs.Error).
func LogError(args ...interface{}) errs.Error {
	err := errs.ESkip(1, args...)
	entry := logrus.WithFields(logrus.Fields{
		"cts":      err.TimeStamp().Format(DefaultTimeFormat),
		"rec":      "err",
		"severity": err.Severity().String(),
		"kind":     err.Kind().String(),
		"ops":      err.OperationPath().String(),
	})
	if frames := err.StackTrace(); len(frames) > 0 && logrus.IsLevelEnabled(logrus.TraceLevel) {
		entry = entry.WithField("at", frames[0].String())
	}
	entry.Log(SeverityLevel(err.Severity()), err.Unwrap())
	return err
}

func SeverityLevel(severity errs.Severity) logrus.Level {
	switch severity {
	case errs.SeverityCritical, errs.SeverityError:
		return logrus.ErrorLevel
	case errs.SeverityWarning:
		return logrus.WarnLevel
	case errs.SeverityInfo:
		return logrus.InfoLevel
	}
	return logrus.DebugLevel
}
