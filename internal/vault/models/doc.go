// Package models defines the typed records kept by the wickit record store,
// their partial-input counterparts and the column codecs they rely on.
//
// Every entity E has:
//
//   - E      : the stored record, returned by every read
//   - EFields: all-optional input; nil members are "not supplied"
//   - NewE   : builds a fresh record from EFields, filling defaults
//
// The same EFields value serves create (defaults fill the gaps) and update
// (only supplied members are written).
package models
