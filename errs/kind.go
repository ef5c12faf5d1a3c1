package errs

type Kind uint32

const (
	KindOther        Kind = iota // Unclassified error. This value is not printed in the error message.
	KindInterrupted              // Run stopped before completion
	KindIO                       // Read / seek failures on an open source
	KindInvalidValue             // Invalid value for this type of item (config, args)
	KindNotExist                 // Item does not exist.
	KindOpenFile                 // os.Open / os.Stat errors
	KindInternal                 // Internal error or inconsistency.
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindInterrupted:
		return "interrupted"
	case KindIO:
		return "IO"
	case KindInvalidValue:
		return "invalid value"
	case KindNotExist:
		return "not exist"
	case KindOpenFile:
		return "file open"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}
