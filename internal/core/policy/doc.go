// Package policy holds the pure decision rules of the spend controller: the
// schedule gate, the budget evaluator and the reconciliation of their
// intents into a single plan per campaign.
//
// Every function takes "now" already converted to the control time zone; the
// calendar day and time of day are read from that location.
package policy
