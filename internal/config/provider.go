package config

import "github.com/footprint-tools/cmdtree/internal/domain"

// Provider implements domain.ConfigProvider over one rc file.
type Provider struct {
	path string
}

func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the rc file the provider reads and writes.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(p.path, key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll(p.path)
}

// Set writes key=value under the rc file lock.
func (p *Provider) Set(key, value string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes key under the rc file lock.
func (p *Provider) Unset(key string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(p.path, lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
