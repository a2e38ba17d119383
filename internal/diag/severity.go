package diag

// Severity defines the importance of a finding.
type Severity uint8

const (
	// SevInfo is for informational findings (e.g. duplicates that agree).
	SevInfo Severity = iota
	// SevWarning is for recoverable problems (e.g. parse warnings).
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
