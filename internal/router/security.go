package router

import "strings"

// ErrorCode is a stable machine-readable identifier for one validation
// failure mode. Codes never change; clients branch on them.
type ErrorCode string

const (
	CodeInvalidCharacters    ErrorCode = "INVALID_CHARACTERS"
	CodeNonASCIICharacters   ErrorCode = "NON_ASCII_CHARACTERS"
	CodeTooManyArguments     ErrorCode = "TOO_MANY_ARGUMENTS"
	CodeInvalidAsteriskCount ErrorCode = "INVALID_ASTERISK_COUNT"
	CodeMissingWorkflowName  ErrorCode = "MISSING_WORKFLOW_NAME"
	CodeMissingAsterisk      ErrorCode = "MISSING_ASTERISK"
	CodeNameTooShort         ErrorCode = "NAME_TOO_SHORT"
	CodeNameTooLong          ErrorCode = "NAME_TOO_LONG"
	CodeInvalidNameFormat    ErrorCode = "INVALID_NAME_FORMAT"
	CodeUnknownAgent         ErrorCode = "UNKNOWN_AGENT"
	CodeUnknownWorkflow      ErrorCode = "UNKNOWN_WORKFLOW"
	CodeCaseMismatch         ErrorCode = "CASE_MISMATCH"
)

// dangerousChars are shell metacharacters and control characters that are
// rejected outright before any structural parsing.
var dangerousChars = []string{";", "&", "|", "$", "`", "<", ">", "\n", "\r", "(", ")"}

// checkSecurity rejects dangerous characters and non-ASCII input.
func checkSecurity(input string) Outcome {
	var found []string
	for _, c := range dangerousChars {
		if strings.Contains(input, c) {
			found = append(found, c)
		}
	}
	if len(found) > 0 {
		return invalid(CodeInvalidCharacters, formatDangerousChars(found))
	}

	var nonASCII []string
	for _, r := range input {
		if r > 127 {
			nonASCII = append(nonASCII, string(r))
		}
	}
	if len(nonASCII) > 0 {
		return invalid(CodeNonASCIICharacters, formatNonASCII(nonASCII))
	}

	return valid()
}
