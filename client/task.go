package client

import (
	"context"
	"net/http"

	"github.com/skyfield-labs/mission-client/entity"
)

// TaskClient lists the processing tasks of a mission. Tasks are read-only
// from this side of the API.
type TaskClient struct {
	api *Client
}

func (tc *TaskClient) List(ctx context.Context, organization, project, mission string) ([]entity.Task, error) {
	path, err := buildResourcePath([]pathSegment{
		seg("org", organization),
		seg("project", project),
		seg("mission", mission),
	}, "tasks")
	if err != nil {
		return nil, err
	}
	var tasks []entity.Task
	if err := tc.api.doJSON(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
