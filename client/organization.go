package client

import (
	"context"
	"net/http"

	"github.com/skyfield-labs/mission-client/entity"
)

// OrganizationClient groups the organization operations.
type OrganizationClient struct {
	api *Client
}

// CreateOrganizationRequest is the full organization body minus the
// backend-generated id. Key doubles as the path slug.
type CreateOrganizationRequest struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

// UpdateOrganizationRequest is a partial patch: nil fields are left out of
// the body and therefore unchanged server-side.
type UpdateOrganizationRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func (oc *OrganizationClient) Create(ctx context.Context, req CreateOrganizationRequest) (*entity.Organization, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", req.Key)})
	if err != nil {
		return nil, err
	}
	var org entity.Organization
	if err := oc.api.doJSON(ctx, http.MethodPost, path, req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (oc *OrganizationClient) Get(ctx context.Context, key string) (*entity.Organization, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", key)})
	if err != nil {
		return nil, err
	}
	var org entity.Organization
	if err := oc.api.doJSON(ctx, http.MethodGet, path, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (oc *OrganizationClient) List(ctx context.Context) ([]entity.Organization, error) {
	var orgs []entity.Organization
	if err := oc.api.doJSON(ctx, http.MethodGet, "/orgs", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (oc *OrganizationClient) Update(ctx context.Context, key string, req UpdateOrganizationRequest) (*entity.Organization, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", key)})
	if err != nil {
		return nil, err
	}
	var org entity.Organization
	if err := oc.api.doJSON(ctx, http.MethodPatch, path, req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (oc *OrganizationClient) Delete(ctx context.Context, key string) error {
	path, err := buildResourcePath([]pathSegment{seg("org", key)})
	if err != nil {
		return err
	}
	return oc.api.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
