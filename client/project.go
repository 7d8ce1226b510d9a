package client

import (
	"context"
	"net/http"

	"github.com/skyfield-labs/mission-client/entity"
)

// ProjectClient groups the project operations. Every operation is scoped by
// the owning organization key.
type ProjectClient struct {
	api *Client
}

type CreateProjectRequest struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type UpdateProjectRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func (pc *ProjectClient) Create(ctx context.Context, organization string, req CreateProjectRequest) (*entity.Project, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", organization), seg("project", req.Key)})
	if err != nil {
		return nil, err
	}
	var project entity.Project
	if err := pc.api.doJSON(ctx, http.MethodPost, path, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (pc *ProjectClient) Get(ctx context.Context, organization, key string) (*entity.Project, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", organization), seg("project", key)})
	if err != nil {
		return nil, err
	}
	var project entity.Project
	if err := pc.api.doJSON(ctx, http.MethodGet, path, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (pc *ProjectClient) List(ctx context.Context, organization string) ([]entity.Project, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", organization)}, "projects")
	if err != nil {
		return nil, err
	}
	var projects []entity.Project
	if err := pc.api.doJSON(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (pc *ProjectClient) Update(ctx context.Context, organization, key string, req UpdateProjectRequest) (*entity.Project, error) {
	path, err := buildResourcePath([]pathSegment{seg("org", organization), seg("project", key)})
	if err != nil {
		return nil, err
	}
	var project entity.Project
	if err := pc.api.doJSON(ctx, http.MethodPatch, path, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (pc *ProjectClient) Delete(ctx context.Context, organization, key string) error {
	path, err := buildResourcePath([]pathSegment{seg("org", organization), seg("project", key)})
	if err != nil {
		return err
	}
	return pc.api.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
