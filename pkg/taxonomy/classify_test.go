package taxonomy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"syscall"
	"testing"
)

func TestClassify_KnownFaults(t *testing.T) {
	tests := []struct {
		name  string
		fault error
		want  int
	}{
		{name: "deadline exceeded", fault: context.DeadlineExceeded, want: CodeModelTimeout},
		{name: "wrapped deadline", fault: fmt.Errorf("calling model: %w", context.DeadlineExceeded), want: CodeModelTimeout},
		{name: "connection refused", fault: syscall.ECONNREFUSED, want: CodeNetworkUnreachable},
		{name: "dns failure", fault: &net.DNSError{Err: "no such host", Name: "api.example.com"}, want: CodeNetworkUnreachable},
		{name: "permission denied", fault: fs.ErrPermission, want: CodePermissionDenied},
		{name: "file not found", fault: fs.ErrNotExist, want: CodeDataNotFound},
		{name: "base64 corrupt input", fault: base64.CorruptInputError(4), want: CodeEncodingError},
		{name: "numeric parse", fault: &strconv.NumError{Func: "Atoi", Num: "x", Err: strconv.ErrSyntax}, want: CodeDataSchemaViolation},
		{name: "json syntax", fault: &json.SyntaxError{Offset: 1}, want: CodeDataSchemaViolation},
		{name: "path error", fault: &fs.PathError{Op: "write", Path: "/tmp/x", Err: syscall.ENOSPC}, want: CodeDiskWriteError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.fault)
			if got.Code != tt.want {
				t.Errorf("Classify(%v).Code = %d, want %d", tt.fault, got.Code, tt.want)
			}
		})
	}
}

func TestClassify_Total(t *testing.T) {
	faults := []error{
		errors.New("completely unclassifiable"),
		errors.New(""),
		fmt.Errorf("outer: %w", errors.New("inner")),
	}
	for _, fault := range faults {
		got := Classify(fault)
		if got.Code != CodeDataSchemaViolation {
			t.Errorf("Classify(%v).Code = %d, want fallback %d", fault, got.Code, CodeDataSchemaViolation)
		}
	}
}

// A specific condition wrapped inside a generic one must hit the specific
// rule: the rule order is the tie-break and must stay reproducible.
func TestClassify_SpecificRulePrecedesGeneric(t *testing.T) {
	t.Run("refused inside net.OpError", func(t *testing.T) {
		fault := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
		got := Classify(fault)
		if got.Code != CodeNetworkUnreachable {
			t.Errorf("Classify(OpError{ECONNREFUSED}).Code = %d, want %d", got.Code, CodeNetworkUnreachable)
		}
	})
	t.Run("permission inside fs.PathError", func(t *testing.T) {
		fault := &fs.PathError{Op: "open", Path: "/etc/shadow", Err: syscall.EACCES}
		got := Classify(fault)
		if got.Code != CodePermissionDenied {
			t.Errorf("Classify(PathError{EACCES}).Code = %d, want %d (not the generic %d)",
				got.Code, CodePermissionDenied, CodeDiskWriteError)
		}
	})
	t.Run("not-exist inside fs.PathError", func(t *testing.T) {
		fault := &fs.PathError{Op: "open", Path: "/missing", Err: syscall.ENOENT}
		got := Classify(fault)
		if got.Code != CodeDataNotFound {
			t.Errorf("Classify(PathError{ENOENT}).Code = %d, want %d (not the generic %d)",
				got.Code, CodeDataNotFound, CodeDiskWriteError)
		}
	})
}

func TestClassify_CarrierSelfClassifies(t *testing.T) {
	def := mustLookup(CodeBudgetExceeded)
	fault := fmt.Errorf("task aborted: %w", NewError(def, "spent 12000 tokens"))
	got := Classify(fault)
	if got.Code != CodeBudgetExceeded {
		t.Errorf("Classify(carrier).Code = %d, want %d", got.Code, CodeBudgetExceeded)
	}
}

func TestClassify_EndToEndPermissionDenied(t *testing.T) {
	def := Classify(fs.ErrPermission)
	if def.Code != 302 {
		t.Fatalf("Classify(permission).Code = %d, want 302", def.Code)
	}
	if def.Category != CategorySecurity {
		t.Errorf("Category = %q, want %q", def.Category, CategorySecurity)
	}
	if def.Severity != SeverityCritical {
		t.Errorf("Severity = %q, want %q", def.Severity, SeverityCritical)
	}
	if def.Retryable {
		t.Errorf("Retryable = true, want false")
	}

	resp := CreateErrorResponse(def, "no access to /etc/passwd")
	if resp.Error.Code != 302 {
		t.Errorf("response code = %d, want 302", resp.Error.Code)
	}
	if resp.Error.Details == nil || *resp.Error.Details != "no access to /etc/passwd" {
		t.Errorf("response details = %v, want %q", resp.Error.Details, "no access to /etc/passwd")
	}
}

func TestDefaultRules_FallbackCodesRegistered(t *testing.T) {
	for _, rule := range DefaultRules() {
		if _, err := Lookup(rule.Code); err != nil {
			t.Errorf("rule %q targets unregistered code %d", rule.Name, rule.Code)
		}
	}
}
