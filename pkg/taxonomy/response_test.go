package taxonomy

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCreateErrorResponse_RoundTrip(t *testing.T) {
	def := mustLookup(CodePermissionDenied)
	resp := CreateErrorResponse(def, "no access to /etc/passwd")

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded struct {
		Error struct {
			Code        int     `json:"code"`
			Name        string  `json:"name"`
			Category    string  `json:"category"`
			Description string  `json:"description"`
			Severity    string  `json:"severity"`
			Retryable   bool    `json:"retryable"`
			Details     *string `json:"details"`
			Timestamp   string  `json:"timestamp"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if decoded.Error.Code != def.Code {
		t.Errorf("code = %d, want %d", decoded.Error.Code, def.Code)
	}
	if decoded.Error.Name != def.Name {
		t.Errorf("name = %q, want %q", decoded.Error.Name, def.Name)
	}
	if decoded.Error.Category != string(def.Category) {
		t.Errorf("category = %q, want %q", decoded.Error.Category, def.Category)
	}
	if decoded.Error.Severity != string(def.Severity) {
		t.Errorf("severity = %q, want %q", decoded.Error.Severity, def.Severity)
	}
	if decoded.Error.Retryable != def.Retryable {
		t.Errorf("retryable = %v, want %v", decoded.Error.Retryable, def.Retryable)
	}
	if decoded.Error.Details == nil || *decoded.Error.Details != "no access to /etc/passwd" {
		t.Errorf("details = %v, want %q", decoded.Error.Details, "no access to /etc/passwd")
	}
}

func TestCreateErrorResponse_AbsentDetailsIsNull(t *testing.T) {
	def := mustLookup(CodeModelTimeout)
	raw, err := json.Marshal(CreateErrorResponse(def, ""))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	details, present := decoded["error"]["details"]
	if !present {
		t.Fatal("details key missing, want present with null value")
	}
	if details != nil {
		t.Errorf("details = %v, want null", details)
	}
}

func TestCreateErrorResponse_Timestamp(t *testing.T) {
	resp := CreateErrorResponse(mustLookup(CodeAuthFailed), "")

	ts, err := time.Parse(timestampLayout, resp.Error.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q does not match layout %q: %v", resp.Error.Timestamp, timestampLayout, err)
	}
	if ts.Location() != time.UTC {
		t.Errorf("timestamp location = %v, want UTC", ts.Location())
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("timestamp %v not freshly generated", ts)
	}
}
