/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrKeyNotFound is returned when an operation requires a key that is absent
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidAlias is returned when an alias cannot be registered against its target
	ErrInvalidAlias = errors.New("invalid alias")

	// ErrAliasNotFound is returned when a key is not a registered alias
	ErrAliasNotFound = errors.New("alias not found")

	// ErrNotFound is returned when a named store or registry entry is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to register a name that already exists
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// KeyNotFoundError represents a lookup of a key that is not in the map
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// InvalidAliasError represents an alias that was rejected for its target key
type InvalidAliasError struct {
	Key    string
	Alias  string
	Reason string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Alias)
}

func (e *InvalidAliasError) Is(target error) bool {
	return target == ErrInvalidAlias
}

// AliasNotFoundError represents a key that is not registered as an alias
type AliasNotFoundError struct {
	Alias string
}

func (e *AliasNotFoundError) Error() string {
	return fmt.Sprintf("alias %q not found", e.Alias)
}

func (e *AliasNotFoundError) Is(target error) bool {
	return target == ErrAliasNotFound
}

// NotFoundError represents an error when a named entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a named entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Reasons carried by InvalidAliasError
const (
	ReasonSelfAlias   = "key and corresponding alias cannot be equal"
	ReasonOriginClash = "alias cannot replace an existing origin key"
)

// Helper functions for creating errors

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key any) error {
	return &KeyNotFoundError{Key: fmt.Sprint(key)}
}

// NewInvalidAliasError creates a new InvalidAliasError
func NewInvalidAliasError(key, alias any, reason string) error {
	return &InvalidAliasError{Key: fmt.Sprint(key), Alias: fmt.Sprint(alias), Reason: reason}
}

// NewAliasNotFoundError creates a new AliasNotFoundError
func NewAliasNotFoundError(alias any) error {
	return &AliasNotFoundError{Alias: fmt.Sprint(alias)}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsInvalidAlias checks if an error is an invalid alias error
func IsInvalidAlias(err error) bool {
	return errors.Is(err, ErrInvalidAlias)
}

// IsAliasNotFound checks if an error is an alias not found error
func IsAliasNotFound(err error) bool {
	return errors.Is(err, ErrAliasNotFound)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
