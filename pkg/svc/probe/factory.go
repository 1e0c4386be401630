package probe

import (
	"context"
	"fmt"

	"github.com/smithfarm/handson/pkg/svc/provider/awsec2"
)

// Factory creates a Provider bound to a region.
type Factory interface {
	Create(ctx context.Context, region string) (Provider, error)
}

// DefaultFactory dials AWS EC2 with the ambient credential chain.
type DefaultFactory struct{}

// Create returns an EC2-backed provider for the given region.
//
//nolint:ireturn // factory returns the interface its consumers depend on
func (DefaultFactory) Create(ctx context.Context, region string) (Provider, error) {
	provider, err := awsec2.NewProviderForRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create EC2 provider for region %s: %w", region, err)
	}

	return provider, nil
}
