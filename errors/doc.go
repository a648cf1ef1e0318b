/*
Package errors provides semantic error types for the AliasStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrKeyNotFound   = errors.New("key not found")
	    ErrInvalidAlias  = errors.New("invalid alias")
	    ErrAliasNotFound = errors.New("alias not found")
	    ErrNotFound      = errors.New("entity not found")
	    ErrAlreadyExists = errors.New("entity already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	)

Usage:

	// Check error type
	err := m.AddAlias(".yaml", ".yml", ".yaml")
	if err != nil {
	    if errors.IsInvalidAlias(err) {
	        // .yml was still registered, only .yaml was rejected
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewKeyNotFoundError(".foo")
	err := errors.NewAliasNotFoundError(".bar")
	err := errors.NewInvalidAliasError(".toml", ".toml", errors.ReasonSelfAlias)

Batch operations join their failures with the standard errors.Join, so each
joined error still matches through errors.Is and errors.As.
*/
package errors
