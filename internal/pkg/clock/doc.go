// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() or time.AfterFunc() directly. Business logic that counts down or
// schedules delayed work can then be driven step by step with Fake in tests,
// without sleeping.
package clock
