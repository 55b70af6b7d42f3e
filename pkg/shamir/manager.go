package shamir

import (
	"github.com/faustbrian/shamir/pkg/config"
	"github.com/faustbrian/shamir/pkg/share"
)

// Manager holds an immutable Config and exposes the split/combine/extend
// operations under it. Manager contains no cryptographic state of its own;
// every call is a pure dispatch to the package-level functions using m's
// config. There is no process-wide default Manager -- callers construct one
// explicitly with NewManager.
type Manager struct {
	cfg config.Config
}

// NewManager returns a Manager operating under cfg.
func NewManager(cfg config.Config) Manager {
	return Manager{cfg: cfg}
}

// Config returns the Manager's current configuration.
func (m Manager) Config() config.Config {
	return m.cfg
}

// WithConfig returns a new Manager using cfg, leaving m unmodified.
func (m Manager) WithConfig(cfg config.Config) Manager {
	return Manager{cfg: cfg}
}

// Split constructs a (k, n) threshold scheme over secret under m's config.
func (m Manager) Split(secret []byte, k, n int) ([]share.Share, error) {
	return Split(m.cfg, secret, k, n)
}

// Combine reconstructs the secret from the given shares (or their string
// forms) under m's config.
func (m Manager) Combine(items ...interface{}) ([]byte, error) {
	return Combine(m.cfg, items...)
}

// Extend mints `additional` new shares compatible with the given shares,
// under m's config.
func (m Manager) Extend(additional int, items ...interface{}) ([]share.Share, error) {
	return Extend(m.cfg, additional, items...)
}

// AreCompatible reports whether every given share shares the same
// threshold. Trivially true for fewer than two shares.
func (m Manager) AreCompatible(shares ...share.Share) bool {
	if len(shares) < 2 {
		return true
	}
	threshold := shares[0].Threshold()
	for _, s := range shares[1:] {
		if s.Threshold() != threshold {
			return false
		}
	}
	return true
}
