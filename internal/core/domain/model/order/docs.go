// Package order contains the Order aggregate and its value objects.
//
// An Order is placed from a table, carries a sequence of item lines and
// optional free-text notes, and moves through a status lifecycle until it is
// archived. Archival is monotonic: once an order is archived nothing in this
// package clears the flag. The only automatic transition is that setting the
// status to Completed archives the order in the same operation.
//
// Item lines come in two shapes inherited from the stored data: a bare label
// (implying quantity 1) or a name with an explicit quantity. Both shapes
// survive a JSON round-trip unchanged, which keeps historical rows readable.
package order
