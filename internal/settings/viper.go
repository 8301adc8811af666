package settings

import (
	"context"

	"github.com/spf13/viper"
)

// ViperProvider reads settings from a viper instance (config file or env).
type ViperProvider struct {
	v *viper.Viper
}

// NewViperProvider wraps v.
func NewViperProvider(v *viper.Viper) *ViperProvider {
	return &ViperProvider{v: v}
}

// Get returns the value for key when viper has one.
func (p *ViperProvider) Get(_ context.Context, key string) (string, bool, error) {
	if !p.v.IsSet(key) {
		return "", false, nil
	}
	return p.v.GetString(key), true, nil
}

// Layered consults providers in order and returns the first hit.
type Layered []Provider

// Get returns the first provider's value for key.
func (l Layered) Get(ctx context.Context, key string) (string, bool, error) {
	for _, p := range l {
		value, ok, err := p.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return value, true, nil
		}
	}
	return "", false, nil
}
