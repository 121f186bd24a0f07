// Package order contains the Order aggregate root of the pickpoint domain.
//
// An Order is placed for pickup at a postautomat (parcel locker) and carries
// up to ten line items referencing catalog products by identity. The
// aggregate owns its line items: composition changes go through the
// set-reconciliation logic in Order.ChangeComposition, and the items are
// removed together with the order.
//
// The Status type models the six delivery states of the original service;
// the service allows any known state to be set, so Status carries no
// transition matrix, only a validity check.
package order
