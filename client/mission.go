package client

import (
	"context"
	"net/http"

	"github.com/skyfield-labs/mission-client/entity"
)

// MissionClient groups the mission operations.
type MissionClient struct {
	api *Client
}

// CreateMissionRequest carries the routing keys alongside the mission body.
// The keys are tagged json:"-" so they only ever shape the request path and
// can never leak into the serialized payload.
type CreateMissionRequest struct {
	Organization string `json:"-"`
	Project      string `json:"-"`
	Mission      string `json:"-"`

	Name     string                 `json:"name"`
	Location string                 `json:"location"`
	Date     string                 `json:"date"`
	Metadata entity.MissionMetadata `json:"metadata"`
}

// UpdateMissionRequest is a partial patch. Metadata is sent only when set;
// whether the backend replaces or merges the metadata map is its contract,
// not ours.
type UpdateMissionRequest struct {
	Name     *string                 `json:"name,omitempty"`
	Label    *string                 `json:"mission,omitempty"`
	Location *string                 `json:"location,omitempty"`
	Date     *string                 `json:"date,omitempty"`
	Metadata *entity.MissionMetadata `json:"metadata,omitempty"`
}

func (mc *MissionClient) missionPath(organization, project, mission string) (string, error) {
	return buildResourcePath([]pathSegment{
		seg("org", organization),
		seg("project", project),
		seg("mission", mission),
	})
}

func (mc *MissionClient) Create(ctx context.Context, req CreateMissionRequest) (*entity.Mission, error) {
	path, err := mc.missionPath(req.Organization, req.Project, req.Mission)
	if err != nil {
		return nil, err
	}
	var mission entity.Mission
	if err := mc.api.doJSON(ctx, http.MethodPost, path, req, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (mc *MissionClient) Get(ctx context.Context, organization, project, key string) (*entity.Mission, error) {
	path, err := mc.missionPath(organization, project, key)
	if err != nil {
		return nil, err
	}
	var mission entity.Mission
	if err := mc.api.doJSON(ctx, http.MethodGet, path, nil, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (mc *MissionClient) List(ctx context.Context, organization, project string) ([]entity.Mission, error) {
	path, err := buildResourcePath([]pathSegment{
		seg("org", organization),
		seg("project", project),
	}, "missions")
	if err != nil {
		return nil, err
	}
	var missions []entity.Mission
	if err := mc.api.doJSON(ctx, http.MethodGet, path, nil, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

func (mc *MissionClient) Update(ctx context.Context, organization, project, key string, req UpdateMissionRequest) (*entity.Mission, error) {
	path, err := mc.missionPath(organization, project, key)
	if err != nil {
		return nil, err
	}
	var mission entity.Mission
	if err := mc.api.doJSON(ctx, http.MethodPatch, path, req, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}
