package goczml

// NewIssue creates an index-less Issue with the provided code and message.
// This is a convenience helper to improve readability at call sites.
func NewIssue(code, msg string) Issue {
	return Issue{Code: code, Message: msg, Index: -1}
}

// IssueAt creates an Issue for the element at the given index.
func IssueAt(index int, code, msg string) Issue {
	return Issue{Code: code, Message: msg, Index: index}
}
