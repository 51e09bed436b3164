// Package driver turns a block backend into bulk ECB encryption. Each strategy honours the call size
// contract of the backend it is paired with: one block per call, capped chunks with a trailing
// remainder, or a single streaming call.
package driver
