package taxonomy

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"syscall"
)

// errUnclassified is the representative fault for names FaultForName does
// not recognise; it matches no rule, so it classifies to the 601 fallback.
var errUnclassified = errors.New("unclassified fault")

// namedFaults maps normalised fault names to representative Go errors that
// exercise the corresponding classification rule. Names are matched after
// lowercasing and stripping non-alphanumeric characters, so "TimeoutError",
// "timeout-error", and "timeout_error" all resolve identically.
var namedFaults = map[string]error{
	"timeout":            context.DeadlineExceeded,
	"timeouterror":       context.DeadlineExceeded,
	"deadlineexceeded":   context.DeadlineExceeded,
	"connectionrefused":  syscall.ECONNREFUSED,
	"connectionreset":    syscall.ECONNRESET,
	"connectionerror":    syscall.ECONNREFUSED,
	"networkunreachable": syscall.ENETUNREACH,
	"hostunreachable":    syscall.EHOSTUNREACH,
	"permissiondenied":   fs.ErrPermission,
	"permissionerror":    fs.ErrPermission,
	"filenotfound":       fs.ErrNotExist,
	"filenotfounderror":  fs.ErrNotExist,
	"notfound":           fs.ErrNotExist,
	"keyerror":           fs.ErrNotExist,
	"encodingerror":      base64.CorruptInputError(0),
	"unicodedecodeerror": base64.CorruptInputError(0),
	"valueerror": &strconv.NumError{
		Func: "ParseInt", Num: "not-a-number", Err: strconv.ErrSyntax,
	},
	"oserror": &fs.PathError{Op: "write", Path: "/dev/full", Err: syscall.ENOSPC},
}

// FaultForName resolves a bare fault name to a representative error suitable
// for Classify. ok is false when the name is unrecognised; the returned
// fault then classifies to the generic fallback.
func FaultForName(name string) (fault error, ok bool) {
	if fault, ok := namedFaults[normalizeFaultName(name)]; ok {
		return fault, true
	}
	return errUnclassified, false
}

func normalizeFaultName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
