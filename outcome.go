package passport

// OutcomeKind discriminates the variants of an Outcome.
type OutcomeKind int

const (
	// OutcomeSuccess means the strategy resolved a user.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeRejected means the attempt was well formed but the credentials
	// did not match. Rejections carry a short reason safe to show the user.
	OutcomeRejected
	// OutcomeErrored means an infrastructure fault interrupted the attempt.
	// The cause is never shown to the end user.
	OutcomeErrored
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Rejection reasons surfaced to the caller on OutcomeRejected.
const (
	ReasonUserNotFound     = "user not found"
	ReasonPasswordMismatch = "password mismatch"
)

// Outcome is the result of a single verification attempt. Exactly one
// variant is populated: a resolved user, a rejection reason, or an error.
type Outcome struct {
	kind   OutcomeKind
	user   *User
	reason string
	err    error
}

// Success returns an Outcome carrying the resolved user.
func Success(user *User) Outcome {
	return Outcome{kind: OutcomeSuccess, user: user}
}

// Rejected returns an Outcome for a normal authentication failure.
func Rejected(reason string) Outcome {
	return Outcome{kind: OutcomeRejected, reason: reason}
}

// Errored returns an Outcome for an infrastructure fault.
func Errored(err error) Outcome {
	return Outcome{kind: OutcomeErrored, err: err}
}

// Kind returns the variant of the outcome.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// Authenticated reports whether the attempt resolved a user.
func (o Outcome) Authenticated() bool {
	return o.kind == OutcomeSuccess && o.user != nil
}

// User returns the resolved user, nil unless Kind is OutcomeSuccess.
func (o Outcome) User() *User {
	return o.user
}

// Reason returns the rejection reason, empty unless Kind is OutcomeRejected.
func (o Outcome) Reason() string {
	return o.reason
}

// Err returns the underlying fault, nil unless Kind is OutcomeErrored.
func (o Outcome) Err() error {
	return o.err
}
