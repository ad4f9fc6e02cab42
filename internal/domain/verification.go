package domain

import "time"

// EmailVerification tracks one outstanding or completed email-ownership
// proof for an address. PK: email — at most one record per address exists,
// so a fresh code atomically supersedes the previous one.
// ExpiresAt is a Unix timestamp also used as the DynamoDB TTL attribute;
// read paths never rely on TTL reaping and treat expired rows as absent.
type EmailVerification struct {
	Email     string    `json:"email" dynamodbav:"email"`
	Code      string    `json:"-" dynamodbav:"code"`
	Verified  bool      `json:"verified" dynamodbav:"verified"`
	Attempts  int       `json:"attempts" dynamodbav:"attempts"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// MaxVerifyAttempts is the number of mismatched codes allowed before the
// record is destroyed and a fresh code must be requested.
const MaxVerifyAttempts = 5

// VerificationTTL is the validity window of a code. Verification does not
// extend it: a verified record expires at the same instant the code would have.
const VerificationTTL = 10 * time.Minute
