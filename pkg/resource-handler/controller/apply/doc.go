// Package apply synchronizes a single child object with the API server.
//
// CreateOrUpdate reads the live object, hands it to a mutate function that
// sets only the fields the operator owns, and writes it back only when the
// result differs. A create happens when the object does not exist yet. Each
// call issues at most one write, so repeated reconciliations of an unchanged
// parent produce no API writes.
//
// SetOwner stamps the single controller owner reference that lets the
// orchestrator garbage-collect children together with their parent.
package apply
