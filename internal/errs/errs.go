// Package errs defines the typed error kinds produced at every boundary
// of the batch-compose, store, and ledger-submission pipeline.
package errs

import "fmt"

// Kind groups errors the way callers need to branch on them: by which
// layer produced the failure, not by a free-form message.
type Kind string

const (
	KindInput    Kind = "input"
	KindCrypto   Kind = "crypto"
	KindStorage  Kind = "storage"
	KindNode     Kind = "node"
)

// Code enumerates the specific error condition within a Kind.
type Code string

const (
	// Input errors: malformed or missing caller-supplied data.
	CodeRequiredKeysMissing Code = "required_keys_missing"
	CodeNoCorrespondingValue Code = "no_corresponding_value"
	CodeSenderDoesNotExist  Code = "sender_does_not_exist"
	CodeInvalidAddress      Code = "invalid_address"
	CodeDuplicateRecipient  Code = "duplicate_recipient"
	CodeFileUnreadable      Code = "file_unreadable"

	// Crypto errors: failures inside the box/hash primitives.
	CodeDecryptSession  Code = "decrypt_session"
	CodeDecryptMessage  Code = "decrypt_message"
	CodeInvalidEncoding Code = "invalid_encoding"
	CodeCryptoBackend   Code = "crypto_backend"

	// Storage errors: the content-addressed store collaborator.
	CodePutFailed          Code = "put_failed"
	CodeGetFailed          Code = "get_failed"
	CodeContentIDMismatch  Code = "content_id_mismatch"

	// Node errors: the permissioned ledger collaborator.
	CodeAddressInBlacklist    Code = "address_in_blacklist"
	CodeAddressNotInWhitelist Code = "address_not_in_whitelist"
	CodeWalletBalance         Code = "wallet_balance"
	CodeExtrinsicFailed       Code = "extrinsic_failed"
	CodeEventTimeout          Code = "event_timeout"
	CodeTransport             Code = "transport"
)

// Error is the typed error every boundary returns, matching the
// (Code, Message, Details) shape used for registry/ledger errors
// elsewhere in this codebase's ancestry.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s/%s: %s: %v", e.Kind, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s/%s: %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value to the error for structured logging.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func newErr(kind Kind, code Code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, cause: cause}
}

// Input builds an InputError.
func Input(code Code, msg string, cause error) *Error { return newErr(KindInput, code, msg, cause) }

// Crypto builds a CryptoError.
func Crypto(code Code, msg string, cause error) *Error { return newErr(KindCrypto, code, msg, cause) }

// Storage builds a StorageError.
func Storage(code Code, msg string, cause error) *Error {
	return newErr(KindStorage, code, msg, cause)
}

// Node builds a NodeError.
func Node(code Code, msg string, cause error) *Error { return newErr(KindNode, code, msg, cause) }

// Is reports whether err is an *Error with the given kind and code,
// so callers can branch without string matching.
func Is(err error, kind Kind, code Code) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind && e.Code == code
}
