package timesheet

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// protocolPrefix and protocolDigits define the public protocol format
// printed on generated mirrors: "KL-" plus 12 uppercase hex characters.
// The format is embedded in documents already in circulation and must not
// change.
const (
	protocolPrefix = "KL-"
	protocolDigits = 12
)

// stampProtocol derives the deterministic, tamper-evident identifier for a
// ledger. Same (employee, unit, period) always stamps the same protocol,
// which lets anyone cross-reference a printed copy against the system
// without a lookup table. It is not a secret and proves nothing about the
// document's contents, only which employee/unit/period it refers to.
func stampProtocol(employeeID, unitID, period string) string {
	payload := strings.Join([]string{employeeID, unitID, period}, ".")
	sum := sha256.Sum256([]byte(payload))
	digest := hex.EncodeToString(sum[:])
	return protocolPrefix + strings.ToUpper(digest[:protocolDigits])
}
