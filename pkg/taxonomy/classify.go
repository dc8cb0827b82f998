package taxonomy

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"syscall"
)

// Rule maps a fault condition to a catalog code. Rules are evaluated in
// slice order; the order is the tie-break when a fault satisfies several
// conditions, so more specific conditions must precede the generic ones
// they specialise.
type Rule struct {
	Name    string
	Code    int
	Matches func(error) bool
}

// defaultRules is the built-in classification table. Ordering matters:
// syscall-level connection errors precede the generic network condition,
// and permission / not-found sentinels precede the generic *fs.PathError
// condition, because a PathError carries those sentinels as its cause.
var defaultRules = []Rule{
	{Name: "connection_refused", Code: CodeNetworkUnreachable, Matches: func(err error) bool {
		return errors.Is(err, syscall.ECONNREFUSED)
	}},
	{Name: "connection_reset", Code: CodeNetworkUnreachable, Matches: func(err error) bool {
		return errors.Is(err, syscall.ECONNRESET)
	}},
	{Name: "deadline_exceeded", Code: CodeModelTimeout, Matches: func(err error) bool {
		return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
	}},
	{Name: "network_timeout", Code: CodeModelTimeout, Matches: func(err error) bool {
		var netErr net.Error
		return errors.As(err, &netErr) && netErr.Timeout()
	}},
	{Name: "dns_failure", Code: CodeNetworkUnreachable, Matches: func(err error) bool {
		var dnsErr *net.DNSError
		return errors.As(err, &dnsErr)
	}},
	{Name: "host_unreachable", Code: CodeNetworkUnreachable, Matches: func(err error) bool {
		return errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH)
	}},
	{Name: "network_failure", Code: CodeNetworkUnreachable, Matches: func(err error) bool {
		var opErr *net.OpError
		return errors.As(err, &opErr)
	}},
	{Name: "permission_denied", Code: CodePermissionDenied, Matches: func(err error) bool {
		return errors.Is(err, fs.ErrPermission)
	}},
	{Name: "not_found", Code: CodeDataNotFound, Matches: func(err error) bool {
		return errors.Is(err, fs.ErrNotExist)
	}},
	{Name: "encoding_failure", Code: CodeEncodingError, Matches: func(err error) bool {
		var b64Err base64.CorruptInputError
		var hexErr hex.InvalidByteError
		return errors.As(err, &b64Err) || errors.As(err, &hexErr) || errors.Is(err, hex.ErrLength)
	}},
	{Name: "numeric_parse", Code: CodeDataSchemaViolation, Matches: func(err error) bool {
		var numErr *strconv.NumError
		return errors.As(err, &numErr)
	}},
	{Name: "json_decode", Code: CodeDataSchemaViolation, Matches: func(err error) bool {
		var synErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		return errors.As(err, &synErr) || errors.As(err, &typeErr)
	}},
	{Name: "filesystem", Code: CodeDiskWriteError, Matches: func(err error) bool {
		var pathErr *fs.PathError
		return errors.As(err, &pathErr)
	}},
}

// DefaultRules returns a copy of the built-in classification table in
// evaluation order.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// Classify maps err to the closest catalog definition. It is a total
// function: a fault matching no rule maps to code 601 (data_schema_violation)
// rather than failing. A *taxonomy.Error carrier classifies to the
// definition it already carries.
func Classify(err error) AgentError {
	var carrier *Error
	if errors.As(err, &carrier) {
		return carrier.Definition()
	}
	for _, rule := range defaultRules {
		if rule.Matches(err) {
			return mustLookup(rule.Code)
		}
	}
	return mustLookup(CodeDataSchemaViolation)
}
