package evm

import "fmt"

// ErrorKind classifies a CodegenError, mirrored on
// original_source/crates/quorlin-codegen-evm/src/lib.rs's CodegenError enum.
type ErrorKind int

const (
	ErrorGeneric ErrorKind = iota
	ErrorUnsupportedFeature
	ErrorContractNotFound
)

// CodegenError is the code generator's single error type; lowering never
// accumulates multiple errors, matching every earlier stage's fail-fast
// contract.
type CodegenError struct {
	Kind    ErrorKind
	Message string
}

func (e *CodegenError) Error() string {
	switch e.Kind {
	case ErrorUnsupportedFeature:
		return fmt.Sprintf("unsupported feature: %s", e.Message)
	case ErrorContractNotFound:
		return "contract not found"
	default:
		return fmt.Sprintf("codegen error: %s", e.Message)
	}
}

func errorf(format string, args ...any) *CodegenError {
	return &CodegenError{Kind: ErrorGeneric, Message: fmt.Sprintf(format, args...)}
}

func unsupportedf(format string, args ...any) *CodegenError {
	return &CodegenError{Kind: ErrorUnsupportedFeature, Message: fmt.Sprintf(format, args...)}
}

var errContractNotFound = &CodegenError{Kind: ErrorContractNotFound}
