// Package override implements the hierarchical configuration chain used for
// monthly goals, collected-amount overrides and bank requisites. The chain is
// an explicit ordered list of scope levels; resolution walks it most specific
// first and stops at the first definite value. The package knows nothing
// about what is being resolved.
package override

import "github.com/google/uuid"

// Scope identifies one level of the configuration hierarchy.
type Scope string

const (
	ScopeSite         Scope = "site"
	ScopeProject      Scope = "project"
	ScopeOrganization Scope = "organization"
)

// Level is one entry of a chain: a scope and the entity to consult there.
type Level struct {
	Scope Scope
	ID    uuid.UUID
}

// Chain is an ordered list of levels, most specific first.
type Chain []Level

// NewChain builds the standard site → project → organization precedence
// order, skipping levels that are not part of the request.
func NewChain(orgID uuid.UUID, projectID, siteID *uuid.UUID) Chain {
	chain := make(Chain, 0, 3)
	if siteID != nil {
		chain = append(chain, Level{Scope: ScopeSite, ID: *siteID})
	}
	if projectID != nil {
		chain = append(chain, Level{Scope: ScopeProject, ID: *projectID})
	}
	chain = append(chain, Level{Scope: ScopeOrganization, ID: orgID})
	return chain
}

// LookupFunc consults one level. It returns the value and true when the
// level has a definite configured value; false means not configured there.
type LookupFunc[T any] func(Level) (T, bool, error)

// Resolve walks the chain in order and returns the first definite value.
// Each level is consulted at most once. A lookup error aborts resolution and
// is returned as-is. An empty chain is a caller bug and panics.
func Resolve[T any](chain Chain, lookup LookupFunc[T]) (T, bool, error) {
	if len(chain) == 0 {
		panic("override: empty scope chain")
	}
	var zero T
	for _, level := range chain {
		v, ok, err := lookup(level)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return zero, false, nil
}
