package errs

import (
	"fmt"
	"strings"
)

type Severity uint32

const (
	SeverityCritical Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityDebug
)

var AllSeverities = []Severity{SeverityCritical, SeverityError, SeverityWarning, SeverityInfo, SeverityDebug}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	}
	return "unknown"
}

func ParseSeverity(s string) (Severity, error) {
	for _, severity := range AllSeverities {
		if strings.EqualFold(severity.String(), s) {
			return severity, nil
		}
	}
	return SeverityError, fmt.Errorf("unknown severity: %q", s)
}
