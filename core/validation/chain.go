// File: chain.go
// Title: Validation Chain
// Description: Collects the precondition checks of one operation and runs
//              them in order, stopping at the first failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2025-08-14 v0.2.0: Chain of precondition checks bound to one operation

package validation

import "fmt"

// Check is a single precondition. It returns nil when satisfied.
type Check func() error

// Chain runs the checks of one operation sequentially
type Chain struct {
	module    string
	operation string
	checks    []Check
}

// NewChain creates an empty chain for module.operation
func NewChain(module, operation string) *Chain {
	return &Chain{module: module, operation: operation}
}

// Add appends a custom check
func (c *Chain) Add(check Check) *Chain {
	c.checks = append(c.checks, check)
	return c
}

// NotNil appends RequireNotNil
func (c *Chain) NotNil(param string, value interface{}) *Chain {
	return c.Add(func() error { return RequireNotNil(c.module, c.operation, param, value) })
}

// NonEmpty appends RequireNonEmpty
func (c *Chain) NonEmpty(param, value string) *Chain {
	return c.Add(func() error { return RequireNonEmpty(c.module, c.operation, param, value) })
}

// ValidEnum appends RequireValidEnum
func (c *Chain) ValidEnum(param string, value Enum) *Chain {
	return c.Add(func() error { return RequireValidEnum(c.module, c.operation, param, value) })
}

// NonNegative appends RequireNonNegative
func (c *Chain) NonNegative(param string, n int) *Chain {
	return c.Add(func() error { return RequireNonNegative(c.module, c.operation, param, n) })
}

// Collection appends RequireCollection followed by RequireMembers
func (c *Chain) Collection(param string, values []string) *Chain {
	c.Add(func() error { return RequireCollection(c.module, c.operation, param, values) })
	return c.Add(func() error { return RequireMembers(c.module, c.operation, param, values) })
}

// Validate runs the checks and returns the first failure
func (c *Chain) Validate() error {
	for _, check := range c.checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of checks in the chain
func (c *Chain) Len() int {
	return len(c.checks)
}

// String returns a string representation of the chain
func (c *Chain) String() string {
	return fmt.Sprintf("Chain{operation: %s.%s, checks: %d}", c.module, c.operation, len(c.checks))
}
