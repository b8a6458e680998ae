package passport

import "github.com/goliatone/go-errors"

const (
	TextCodeUnknownStrategy = "passport_unknown_strategy"
	TextCodeBadPayload      = "passport_bad_payload"
	TextCodeNoProfileEmail  = "passport_profile_without_email"
	TextCodeIdentityMissing = "passport_identity_missing"
)

// ErrUnknownStrategy is returned when dispatching to a name that was never
// registered. This is a configuration fault, not a per-request rejection.
var ErrUnknownStrategy = errors.New("unknown authentication strategy", errors.CategoryBadInput).
	WithTextCode(TextCodeUnknownStrategy).
	WithCode(errors.CodeBadRequest)

// ErrBadPayload is returned when a strategy receives an attempt payload of
// the wrong type. Like ErrUnknownStrategy this signals a wiring mistake.
var ErrBadPayload = errors.New("attempt payload does not match strategy", errors.CategoryBadInput).
	WithTextCode(TextCodeBadPayload).
	WithCode(errors.CodeBadRequest)

// ErrProfileWithoutEmail is returned when a federated profile carries no
// email. The external sub-record requires one, so provisioning cannot
// proceed; surfacing an error (not a rejection) keeps the user from
// retrying credentials that were never the problem.
var ErrProfileWithoutEmail = errors.New("federated profile carries no email", errors.CategoryBadInput).
	WithTextCode(TextCodeNoProfileEmail).
	WithCode(errors.CodeBadRequest)

// ErrSessionIdentityMissing is returned when a session reference points at
// an identity that no longer exists. The session must be treated as
// invalid, never as anonymous.
var ErrSessionIdentityMissing = errors.New("identity missing", errors.CategoryAuth).
	WithTextCode(TextCodeIdentityMissing).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is the comparison failure sentinel returned
// by the store's password capability.
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString guards hashing empty passwords.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest)
