// Package faults defines the error taxonomy shared by the ingestion job and
// the query service.
//
// Components wrap their failures with a Kind so that callers can apply a
// differentiated policy instead of matching on error strings:
//
//	KindData      — malformed or missing source data
//	KindEmbedding — embedding model load or inference failure
//	KindStore     — vector store I/O failure (open, upsert, query)
//	KindUpstream  — completion service failure (network, quota, bad response)
//
// Errors remain compatible with errors.Is/errors.As, so wrapped causes stay
// inspectable.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies an error by the subsystem that produced it.
type Kind int

const (
	KindUnknown Kind = iota
	KindData
	KindEmbedding
	KindStore
	KindUpstream
)

// String returns a short machine-friendly label for the kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindEmbedding:
		return "embedding"
	case KindStore:
		return "store"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error carries a classified failure along with the operation that produced it.
type Error struct {
	// Kind is the failure class, used for policy decisions (HTTP status
	// mapping, retry eligibility).
	Kind Kind

	// Op names the failing operation, e.g. "vectorstore.upsert".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and operation name.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Data wraps err as a data error.
func Data(op string, err error) error { return New(KindData, op, err) }

// Embedding wraps err as an embedding error.
func Embedding(op string, err error) error { return New(KindEmbedding, op, err) }

// Store wraps err as a store error.
func Store(op string, err error) error { return New(KindStore, op, err) }

// Upstream wraps err as an upstream completion-service error.
func Upstream(op string, err error) error { return New(KindUpstream, op, err) }

// KindOf reports the kind of the first classified error in err's chain,
// or KindUnknown if none is found.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
