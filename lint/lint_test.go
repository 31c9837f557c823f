package lint

import (
	"testing"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/syntax"
)

func parse(t *testing.T, src string, version syntax.TomlVersion) *ast.Root {
	t.Helper()
	root := ast.Document(src, version)
	if len(root.Errors) != 0 {
		t.Fatalf("unexpected parse errors for %q: %+v", src, root.Errors)
	}
	return root
}

func TestDetectConflictsKeyValueThenTable(t *testing.T) {
	root := parse(t, "a.b = 1\n[a.b]\nx = 2\n", syntax.DefaultTomlVersion)
	diags := DetectConflicts(root, "a.b = 1\n[a.b]\nx = 2\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Severity != diagnostic.SeverityError {
		t.Errorf("severity = %v, want SeverityError", diags[0].Severity)
	}
}

func TestDetectConflictsDuplicateTable(t *testing.T) {
	src := "[a]\nx = 1\n[a]\ny = 2\n"
	root := parse(t, src, syntax.DefaultTomlVersion)
	diags := DetectConflicts(root, src)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
}

func TestDetectConflictsTableThenArrayOfTableMixed(t *testing.T) {
	src := "[a]\nx = 1\n[[a]]\ny = 2\n"
	root := parse(t, src, syntax.DefaultTomlVersion)
	diags := DetectConflicts(root, src)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
}

func TestDetectConflictsRepeatedArrayOfTableAllowed(t *testing.T) {
	src := "[[a]]\nx = 1\n[[a]]\nx = 2\n"
	root := parse(t, src, syntax.DefaultTomlVersion)
	if diags := DetectConflicts(root, src); len(diags) != 0 {
		t.Errorf("repeated [[a]] entries should not conflict, got %+v", diags)
	}
}

func TestDetectConflictsDistinctTablesNoConflict(t *testing.T) {
	src := "[a]\nx = 1\n[b]\ny = 2\n"
	root := parse(t, src, syntax.DefaultTomlVersion)
	if diags := DetectConflicts(root, src); len(diags) != 0 {
		t.Errorf("distinct tables should not conflict, got %+v", diags)
	}
}

func TestValidateDateTimesValidOffsetDateTime(t *testing.T) {
	root := parse(t, "a = 1979-05-27T07:32:00Z\n", syntax.DefaultTomlVersion)
	if errs := ValidateDateTimes(root, syntax.DefaultTomlVersion); len(errs) != 0 {
		t.Errorf("valid offset-date-time reported errors: %+v", errs)
	}
}

func TestValidateDateTimesOutOfRangeHour(t *testing.T) {
	root := parse(t, "a = 1979-05-27T25:00:00Z\n", syntax.DefaultTomlVersion)
	errs := ValidateDateTimes(root, syntax.DefaultTomlVersion)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
}

func TestValidateDateTimesLocalTimeOptionalSecondsPreview(t *testing.T) {
	root := parse(t, "a = 00:32\n", syntax.V1_1_0_Preview)
	if errs := ValidateDateTimes(root, syntax.V1_1_0_Preview); len(errs) != 0 {
		t.Errorf("optional seconds under preview grammar reported errors: %+v", errs)
	}
}

func TestValidateDateTimesLocalTimeOptionalSecondsRejectedUnderV1(t *testing.T) {
	root := parse(t, "a = 00:32\n", syntax.V1_1_0_Preview)
	errs := ValidateDateTimes(root, syntax.V1_0_0)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (OptionalSeconds): %+v", len(errs), errs)
	}
}

func TestValidateDateTimesInsideArrayAndInlineTable(t *testing.T) {
	root := parse(t, "a = [1979-05-27T25:00:00Z]\nb = { t = 1979-05-27T25:00:00Z }\n", syntax.DefaultTomlVersion)
	errs := ValidateDateTimes(root, syntax.DefaultTomlVersion)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2 (one per nested date-time): %+v", len(errs), errs)
	}
}

func TestBuildValueScalarsAndNesting(t *testing.T) {
	root := parse(t, "name = \"tombi\"\ncount = 3\n\n[server]\nport = 8080\n\n[[worker]]\nid = 1\n[[worker]]\nid = 2\n", syntax.DefaultTomlVersion)
	v := BuildValue(root)
	if v["name"] != "tombi" {
		t.Errorf("name = %#v, want \"tombi\"", v["name"])
	}
	if v["count"] != int64(3) {
		t.Errorf("count = %#v, want int64(3)", v["count"])
	}
	server, ok := v["server"].(map[string]any)
	if !ok || server["port"] != int64(8080) {
		t.Errorf("server = %#v, want {port: 8080}", v["server"])
	}
	workers, ok := v["worker"].([]any)
	if !ok || len(workers) != 2 {
		t.Fatalf("worker = %#v, want a 2-element array", v["worker"])
	}
	w0, ok := workers[0].(map[string]any)
	if !ok || w0["id"] != int64(1) {
		t.Errorf("worker[0] = %#v, want {id: 1}", workers[0])
	}
}

func TestLintCombinesParseAndSemanticDiagnostics(t *testing.T) {
	diags := Lint("a.b = 1\n[a.b]\nx = 1979-05-27T25:00:00Z\n", syntax.DefaultTomlVersion, Options{}, nil, "tombi.toml")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2 (conflict + bad date-time): %+v", len(diags), diags)
	}
}

func TestLintNoSchemaNoFindings(t *testing.T) {
	diags := Lint("a = 1\n", syntax.DefaultTomlVersion, Options{}, nil, "tombi.toml")
	if len(diags) != 0 {
		t.Errorf("clean document with no schema produced diagnostics: %+v", diags)
	}
}
