package model

import "testing"

func TestDiagnosticKindString(t *testing.T) {
	vs := []struct {
		k    DiagnosticKind
		want string
	}{
		{NoClosedEntity, "NoClosedEntity"},
		{AutoClosedOpenPolylines, "AutoClosedOpenPolylines"},
		{ReparsedAsRawLineArc, "ReparsedAsRawLineArc"},
		{UsedHullFallback, "UsedHullFallback"},
		{DenseFastPathTaken, "DenseFastPathTaken"},
		{DiagnosticKind(99), "Unknown"},
	}
	for i, v := range vs {
		if got := v.k.String(); got != v.want {
			t.Errorf("test=%d DiagnosticKind(%d).String() = %q, want %q", i, v.k, got, v.want)
		}
	}
}
