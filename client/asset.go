package client

import (
	"context"
	"io"
	"net/http"

	"github.com/skyfield-labs/mission-client/entity"
)

// AssetClient groups the asset operations. Assets are created only by
// uploading; there is no update or delete.
type AssetClient struct {
	api *Client
}

// UploadFile describes one observation file to upload. ContentType falls
// back to application/octet-stream; Size is optional and only feeds the
// upload byte counter.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func (ac *AssetClient) missionSegments(organization, project, mission string) []pathSegment {
	return []pathSegment{
		seg("org", organization),
		seg("project", project),
		seg("mission", mission),
	}
}

// Upload sends one file as a multipart body with a single part named "file"
// and returns the Asset record the backend created for it.
func (ac *AssetClient) Upload(ctx context.Context, organization, project, mission string, file UploadFile) (*entity.Asset, error) {
	path, err := buildResourcePath(ac.missionSegments(organization, project, mission), "assets", "upload")
	if err != nil {
		return nil, err
	}
	var asset entity.Asset
	if err := ac.api.doMultipart(ctx, path, file, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (ac *AssetClient) List(ctx context.Context, organization, project, mission string) ([]entity.Asset, error) {
	path, err := buildResourcePath(ac.missionSegments(organization, project, mission), "assets")
	if err != nil {
		return nil, err
	}
	var assets []entity.Asset
	if err := ac.api.doJSON(ctx, http.MethodGet, path, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (ac *AssetClient) Get(ctx context.Context, organization, project, mission, assetID string) (*entity.Asset, error) {
	segments := append(ac.missionSegments(organization, project, mission), seg("assets", assetID))
	path, err := buildResourcePath(segments)
	if err != nil {
		return nil, err
	}
	var asset entity.Asset
	if err := ac.api.doJSON(ctx, http.MethodGet, path, nil, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// ThumbnailURL builds the browser-loadable thumbnail URL for an asset. No
// network call happens here; the rendering layer fetches the image itself.
func (ac *AssetClient) ThumbnailURL(organization, project, mission, assetID string) (string, error) {
	segments := append(ac.missionSegments(organization, project, mission), seg("assets", assetID))
	path, err := buildResourcePath(segments, "thumbnail")
	if err != nil {
		return "", err
	}
	return ac.api.baseURL + path, nil
}
