package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skyfield-labs/mission-client/config"
)

// fakeBackend is an in-memory mission API implementing the envelope contract:
// {"data": ...} on success, {"error": "..."} on failure, 204 for deletes.
type fakeBackend struct {
	mu sync.Mutex

	orgs     map[string]map[string]any
	projects map[string]map[string]any // "org/key"
	missions map[string]map[string]any // "org/project/key"
	assets   map[string][]gin.H        // "org/project/mission"
	tasks    map[string][]gin.H

	// failUploads maps a filename to the error message to fail it with.
	failUploads map[string]string
	// failUploadsEarly, when set, rejects every upload with a 500 before
	// the multipart body is read.
	failUploadsEarly string

	uploadAttempts  []string
	lastMissionBody map[string]any
	lastRequestID   string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		orgs:        make(map[string]map[string]any),
		projects:    make(map[string]map[string]any),
		missions:    make(map[string]map[string]any),
		assets:      make(map[string][]gin.H),
		tasks:       make(map[string][]gin.H),
		failUploads: make(map[string]string),
	}
}

func newTestClient(t *testing.T) (*Client, *fakeBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := newFakeBackend()
	srv := httptest.NewServer(fb.router())
	t.Cleanup(srv.Close)

	cfg := &config.EnvConfig{}
	cfg.API.BaseURL = srv.URL
	return InitClient(cfg), fb
}

func (fb *fakeBackend) router() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		fb.mu.Lock()
		fb.lastRequestID = c.GetHeader("X-Request-ID")
		fb.mu.Unlock()
	})

	r.POST("/org/:org", fb.createOrg)
	r.GET("/org/:org", fb.getOrg)
	r.GET("/orgs", fb.listOrgs)
	r.PATCH("/org/:org", fb.updateOrg)
	r.DELETE("/org/:org", fb.deleteOrg)

	r.POST("/org/:org/project/:project", fb.createProject)
	r.GET("/org/:org/project/:project", fb.getProject)
	r.GET("/org/:org/projects", fb.listProjects)
	r.PATCH("/org/:org/project/:project", fb.updateProject)
	r.DELETE("/org/:org/project/:project", fb.deleteProject)

	missionPath := "/org/:org/project/:project/mission/:mission"
	r.POST(missionPath, fb.createMission)
	r.GET(missionPath, fb.getMission)
	r.GET("/org/:org/project/:project/missions", fb.listMissions)
	r.PATCH(missionPath, fb.updateMission)

	r.POST(missionPath+"/assets/upload", fb.uploadAsset)
	r.GET(missionPath+"/assets", fb.listAssets)
	r.GET(missionPath+"/assets/:asset", fb.getAsset)
	r.GET(missionPath+"/tasks", fb.listTasks)

	return r
}

func respondData(c *gin.Context, v any) {
	c.JSON(http.StatusOK, gin.H{"data": v})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func mergeBody(c *gin.Context, into map[string]any) bool {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	for k, v := range patch {
		into[k] = v
	}
	return true
}

// Organizations

func (fb *fakeBackend) createOrg(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	key := c.Param("org")
	body["id"] = uuid.NewString()
	body["key"] = key
	fb.orgs[key] = body
	respondData(c, body)
}

func (fb *fakeBackend) getOrg(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	org, ok := fb.orgs[c.Param("org")]
	if !ok {
		respondError(c, http.StatusNotFound, "organization not found")
		return
	}
	respondData(c, org)
}

func (fb *fakeBackend) listOrgs(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	orgs := make([]map[string]any, 0, len(fb.orgs))
	for _, org := range fb.orgs {
		orgs = append(orgs, org)
	}
	respondData(c, orgs)
}

func (fb *fakeBackend) updateOrg(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	org, ok := fb.orgs[c.Param("org")]
	if !ok {
		respondError(c, http.StatusNotFound, "organization not found")
		return
	}
	if !mergeBody(c, org) {
		return
	}
	respondData(c, org)
}

func (fb *fakeBackend) deleteOrg(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	key := c.Param("org")
	if _, ok := fb.orgs[key]; !ok {
		respondError(c, http.StatusNotFound, "organization not found")
		return
	}
	delete(fb.orgs, key)
	c.Status(http.StatusNoContent)
}

// Projects

func projectKey(c *gin.Context) string {
	return c.Param("org") + "/" + c.Param("project")
}

func (fb *fakeBackend) createProject(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body["id"] = uuid.NewString()
	body["key"] = c.Param("project")
	fb.projects[projectKey(c)] = body
	respondData(c, body)
}

func (fb *fakeBackend) getProject(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	project, ok := fb.projects[projectKey(c)]
	if !ok {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	respondData(c, project)
}

func (fb *fakeBackend) listProjects(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	prefix := c.Param("org") + "/"
	projects := make([]map[string]any, 0)
	for key, project := range fb.projects {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			projects = append(projects, project)
		}
	}
	respondData(c, projects)
}

func (fb *fakeBackend) updateProject(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	project, ok := fb.projects[projectKey(c)]
	if !ok {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	if !mergeBody(c, project) {
		return
	}
	respondData(c, project)
}

func (fb *fakeBackend) deleteProject(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	key := projectKey(c)
	if _, ok := fb.projects[key]; !ok {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	delete(fb.projects, key)
	c.Status(http.StatusNoContent)
}

// Missions

func missionKey(c *gin.Context) string {
	return c.Param("org") + "/" + c.Param("project") + "/" + c.Param("mission")
}

func (fb *fakeBackend) createMission(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	fb.lastMissionBody = body

	stored := make(map[string]any, len(body)+3)
	for k, v := range body {
		stored[k] = v
	}
	stored["id"] = uuid.NewString()
	stored["key"] = c.Param("mission")
	stored["mission"] = c.Param("mission")
	fb.missions[missionKey(c)] = stored
	respondData(c, stored)
}

func (fb *fakeBackend) getMission(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	mission, ok := fb.missions[missionKey(c)]
	if !ok {
		respondError(c, http.StatusNotFound, "mission not found")
		return
	}
	respondData(c, mission)
}

func (fb *fakeBackend) listMissions(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	prefix := c.Param("org") + "/" + c.Param("project") + "/"
	missions := make([]map[string]any, 0)
	for key, mission := range fb.missions {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			missions = append(missions, mission)
		}
	}
	respondData(c, missions)
}

func (fb *fakeBackend) updateMission(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	mission, ok := fb.missions[missionKey(c)]
	if !ok {
		respondError(c, http.StatusNotFound, "mission not found")
		return
	}
	if !mergeBody(c, mission) {
		return
	}
	respondData(c, mission)
}

// Assets

func (fb *fakeBackend) uploadAsset(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.failUploadsEarly != "" {
		respondError(c, http.StatusInternalServerError, fb.failUploadsEarly)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid multipart body")
		return
	}
	if len(form.File) != 1 || len(form.File["file"]) != 1 {
		respondError(c, http.StatusBadRequest, "expected exactly one part named file")
		return
	}

	fh := form.File["file"][0]
	fb.uploadAttempts = append(fb.uploadAttempts, fh.Filename)

	if message, ok := fb.failUploads[fh.Filename]; ok {
		respondError(c, http.StatusInternalServerError, message)
		return
	}

	asset := gin.H{
		"id":           uuid.NewString(),
		"originalName": fh.Filename,
		"contentType":  fh.Header.Get("Content-Type"),
		"size":         fh.Size,
		"path":         "storage/" + missionKey(c) + "/" + fh.Filename,
		"uploadedAt":   time.Now().UTC().Format(time.RFC3339),
		"presignedUrl": "https://storage.test/presigned/" + fh.Filename,
		"directUrl":    "https://storage.test/direct/" + fh.Filename,
	}
	key := missionKey(c)
	fb.assets[key] = append(fb.assets[key], asset)
	respondData(c, asset)
}

func (fb *fakeBackend) listAssets(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	assets := fb.assets[missionKey(c)]
	if assets == nil {
		assets = []gin.H{}
	}
	respondData(c, assets)
}

func (fb *fakeBackend) getAsset(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	for _, asset := range fb.assets[missionKey(c)] {
		if asset["id"] == c.Param("asset") {
			respondData(c, asset)
			return
		}
	}
	respondError(c, http.StatusNotFound, "asset not found")
}

// Tasks

func (fb *fakeBackend) listTasks(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	tasks := fb.tasks[missionKey(c)]
	if tasks == nil {
		tasks = []gin.H{}
	}
	respondData(c, tasks)
}
