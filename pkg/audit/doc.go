// Package audit provides audit logging for gateway operations.
//
// Events are emitted in RFC5424 syslog format so they can be shipped to
// standard log collectors. Two event types exist:
//
//   - LoginEvent: OTP login attempts (success/failure)
//   - StatementEvent: SQL statements, whether admitted or refused
//
// A Logger writes to stdout unless redirected with SetWriter.
package audit
