package iso20022

import (
	"fmt"

	"github.com/reoring/iso20022/i18n"
)

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// Violation builds a single-issue error whose message is rendered by the
// current i18n translator. params become both Issue.Params and template data.
func Violation(p PathRef, code, rule string, params map[string]any) error {
	return Issues{ViolationIssue(p, code, rule, params)}
}

// ViolationIssue is Violation without the error wrapper, for callers that
// collect several issues.
func ViolationIssue(p PathRef, code, rule string, params map[string]any) Issue {
	data := make(map[string]string, len(params)+1)
	data["field"] = fieldName(p)
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	iss := IssueAt(p, code, i18n.T(code, data), params)
	iss.Rule = rule
	return iss
}
