package service

import (
	"github.com/Drenae/AndroidTvRemote/pkg/identity"
	"github.com/Drenae/AndroidTvRemote/pkg/pairing"
	"github.com/Drenae/AndroidTvRemote/pkg/remote"
)

// IdentitySource is the part of the identity provider the client needs.
// HasIdentity decides whether Connect pairs first.
type IdentitySource interface {
	HasIdentity() bool
	pairing.IdentitySource
}

// Compile-time checks.
var (
	_ IdentitySource        = (*identity.Provider)(nil)
	_ remote.IdentitySource = IdentitySource(nil)
)
