package model

import "strings"

// RepoRef is the (short name, owner) pair derived from an "owner/name" identifier.
// Either field may be nil.
type RepoRef struct {
	Name  *string `json:"repo_name"`
	Owner *string `json:"repo_owner"`
}

// ParseRepoRef splits a composite identifier at its first "/". The remainder after the
// separator is kept verbatim even when it contains more separators.
func ParseRepoRef(composite *string) RepoRef {
	if composite == nil {
		return RepoRef{}
	}

	owner, name, found := strings.Cut(*composite, "/")
	if !found {
		full := *composite
		return RepoRef{Name: &full}
	}

	return RepoRef{Name: &name, Owner: &owner}
}

// Repository lets every record embedding RepoRef satisfy Record
func (r RepoRef) Repository() RepoRef {
	return r
}

// GetName returns the short name or ""
func (r RepoRef) GetName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// GetOwner returns the owner or ""
func (r RepoRef) GetOwner() string {
	if r.Owner == nil {
		return ""
	}
	return *r.Owner
}
