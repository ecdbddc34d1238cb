// Package errors provides error types for faang.
// This file contains catalog lookup and command-line usage errors.
package errors

import (
	"fmt"
	"strings"
)

// InvalidChoice creates an error for a flag or argument outside a closed set
// of values, such as an unknown category.
func InvalidChoice(what, value string, valid []string) *Error {
	return &Error{
		Kind:    ErrUsage,
		Message: fmt.Sprintf("unknown %s %q", what, value),
		Details: map[string]string{
			"value": value,
			"valid": strings.Join(valid, ", "),
		},
		Suggestion: fmt.Sprintf("Use one of: %s", strings.Join(valid, ", ")),
	}
}

// ResourceNotFound creates an error when a resource reference matches nothing.
func ResourceNotFound(ref string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("resource not found: %s", ref),
		Details: map[string]string{
			"reference": ref,
		},
		Suggestion: `Reference a resource by its ID, an ID prefix of at least 4 characters,
or its exact title.

  List IDs:        faang list -o json
  Search by text:  faang search <query>`,
	}
}

// AmbiguousReference creates an error when an ID prefix matches several resources.
func AmbiguousReference(ref string, candidates []string) *Error {
	shown := candidates
	if len(shown) > 5 {
		shown = shown[:5]
	}
	err := &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("reference %q matches %d resources", ref, len(candidates)),
		Details: map[string]string{
			"reference":  ref,
			"candidates": strings.Join(shown, ", "),
		},
		Suggestion: "Use a longer ID prefix or the full ID.",
	}
	if len(candidates) > len(shown) {
		err.Details["candidates"] += fmt.Sprintf(" ... and %d more", len(candidates)-len(shown))
	}
	return err
}

// WeekOutOfRange creates an error for a roadmap week outside the plan.
func WeekOutOfRange(week, weeks int) *Error {
	return &Error{
		Kind:    ErrUsage,
		Message: fmt.Sprintf("week %d is outside the %d-week roadmap", week, weeks),
		Details: map[string]string{
			"week": fmt.Sprintf("%d", week),
		},
		Suggestion: fmt.Sprintf("Pick a week between 1 and %d, or omit --week to see the whole roadmap.", weeks),
	}
}
