package schedule

import "fmt"

// Failure taxonomy for site automation. Every step failure is classified
// against one of these so the caller can decide between aborting the run,
// returning an empty sentinel and which notification to send. Nothing is
// ever swallowed unclassified.
var (
	// ErrCredentialsMissing: no account identifier or password configured.
	// Fatal precondition, checked before any navigation.
	ErrCredentialsMissing = fmt.Errorf("credentials are not configured")

	// ErrAuthFailed: login flow could not complete (no submit control,
	// rejected credentials). Fatal, aborts the run.
	ErrAuthFailed = fmt.Errorf("authentication failed")

	// ErrLocatorExhausted: every fallback strategy failed for an element.
	// Fatal for enrollment actions; status and workout reads map it to an
	// empty sentinel instead, because "nothing scheduled" is a valid
	// business outcome.
	ErrLocatorExhausted = fmt.Errorf("all locator strategies exhausted")

	// ErrTransientUI: popup failed to open or modal state was inconsistent.
	// Recovered locally by reload-and-retry once; escalates to
	// ErrLocatorExhausted if the retry fails too.
	ErrTransientUI = fmt.Errorf("transient UI failure")
)
