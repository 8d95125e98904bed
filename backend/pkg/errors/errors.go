package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeResolve represents query resolution failures
	ErrorTypeResolve ErrorType = "resolve"
	// ErrorTypeCatalog represents catalog feed errors
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeGraph represents evolution graph integrity errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeRefresh represents index rebuild lifecycle errors
	ErrorTypeRefresh ErrorType = "refresh"
	// ErrorTypeOverride represents nickname override feed errors
	ErrorTypeOverride ErrorType = "override"
	// ErrorTypeDiscord represents Discord-related errors
	ErrorTypeDiscord ErrorType = "discord"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// Base exposes the embedded error for type checks across wrapper structs
func (e *BaseError) Base() *BaseError {
	return e
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Resolve Errors
//
// Resolution failures are ordinary return values of the query cascade, never
// panics. Each carries the query text that produced it.

// ErrResolveNotFound is returned when no cascade stage matched the query
type ErrResolveNotFound struct {
	*BaseError
	Query string
}

func NewResolveNotFound(query string) *ErrResolveNotFound {
	return &ErrResolveNotFound{
		BaseError: NewBaseError(ErrorTypeResolve, fmt.Sprintf("no match for query: %s", query), nil),
		Query:     query,
	}
}

// ErrResolveTooShort is returned when a non-numeric query is below the
// minimum length required by the scan stages
type ErrResolveTooShort struct {
	*BaseError
	Query string
}

func NewResolveTooShort(query string) *ErrResolveTooShort {
	return &ErrResolveTooShort{
		BaseError: NewBaseError(ErrorTypeResolve, fmt.Sprintf("query must be at least 4 letters: %s", query), nil),
		Query:     query,
	}
}

// ErrResolveIDNotFound is returned when an all-digit query names no entity
type ErrResolveIDNotFound struct {
	*BaseError
	Query string
}

func NewResolveIDNotFound(query string) *ErrResolveIDNotFound {
	return &ErrResolveIDNotFound{
		BaseError: NewBaseError(ErrorTypeResolve, fmt.Sprintf("looks like a monster ID but was not found: %s", query), nil),
		Query:     query,
	}
}

// Catalog Errors

// ErrFeedUnavailable is returned when the catalog or override feed cannot be
// fetched or read
type ErrFeedUnavailable struct {
	*BaseError
	Source string
}

func NewFeedUnavailable(source string, err error) *ErrFeedUnavailable {
	return &ErrFeedUnavailable{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("feed unavailable: %s", source), err),
		Source:    source,
	}
}

// ErrMalformedRecord is returned when a catalog record references a missing
// foreign id or violates a uniqueness invariant
type ErrMalformedRecord struct {
	*BaseError
	Collection string
	RecordID   int
}

func NewMalformedRecord(collection string, recordID int, reason string) *ErrMalformedRecord {
	return &ErrMalformedRecord{
		BaseError:  NewBaseError(ErrorTypeCatalog, fmt.Sprintf("malformed %s record %d: %s", collection, recordID, reason), nil),
		Collection: collection,
		RecordID:   recordID,
	}
}

// Graph Errors

// ErrGraphIntegrity is returned when the evolution graph is not a clean
// forest: an entity reached from two roots, a revisit inside one traversal
// (cycle or converging edges), or an entity unreachable from any root
type ErrGraphIntegrity struct {
	*BaseError
	EntityID int
	Reason   string
}

func NewGraphIntegrity(entityID int, reason string) *ErrGraphIntegrity {
	return &ErrGraphIntegrity{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("evolution graph integrity violation at entity %d: %s", entityID, reason), nil),
		EntityID:  entityID,
		Reason:    reason,
	}
}

// Refresh Errors

// ErrRefreshInProgress is returned when a rebuild trigger fires while another
// rebuild is still running; the trigger is dropped, not queued
var ErrRefreshInProgress = NewBaseError(ErrorTypeRefresh, "refresh already in progress", nil)

// ErrSnapshotUnavailable is returned when a query arrives before the first
// successful rebuild has published a snapshot
var ErrSnapshotUnavailable = NewBaseError(ErrorTypeRefresh, "no index snapshot available yet", nil)

// Discord Errors

// ErrDiscordSendFailed is returned when sending a Discord message fails
type ErrDiscordSendFailed struct {
	*BaseError
	ChannelID string
}

func NewDiscordSendFailed(channelID string, err error) *ErrDiscordSendFailed {
	return &ErrDiscordSendFailed{
		BaseError: NewBaseError(ErrorTypeDiscord, "failed to send message", err),
		ChannelID: channelID,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if based, ok := err.(interface{ Base() *BaseError }); ok {
			return based.Base().Type == errType
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsResolveFailure reports whether an error is one of the structured query
// resolution failures (as opposed to an infrastructure error)
func IsResolveFailure(err error) bool {
	return IsErrorType(err, ErrorTypeResolve)
}
