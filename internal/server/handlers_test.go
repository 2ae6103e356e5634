package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/db"
	"github.com/verdant/green-matcher/internal/matching"
)

type stubStore struct {
	investors []db.Investor
	projects  []db.Project
	notes     map[string]db.InterestNote
}

func newStubStore() *stubStore {
	return &stubStore{
		investors: []db.Investor{
			{ID: 1, Name: "Evergreen Capital", SectorFocus: "energy", MinInvestmentSize: "10000", PreferredESGCriteria: "green,solar"},
			{ID: 2, Name: "Bad Data Fund", SectorFocus: "energy", MinInvestmentSize: "ten thousand", PreferredESGCriteria: "green"},
		},
		projects: []db.Project{
			{ID: 1, Name: "Solar Farm", Sector: "energy", FundingNeeded: "15000", ESGTags: "E:green,S:jobs", ReadinessLevel: "Piloted"},
			{ID: 2, Name: "Wind Coop", Sector: "energy", FundingNeeded: "8000", ESGTags: "E:solar", ReadinessLevel: "Idea"},
			{ID: 3, Name: "Well Drilling", Sector: "water", FundingNeeded: "20000", ESGTags: "E:clean water", ReadinessLevel: "Scalable"},
		},
		notes: make(map[string]db.InterestNote),
	}
}

func (s *stubStore) ListInvestors(context.Context) ([]db.Investor, error) {
	return s.investors, nil
}

func (s *stubStore) GetInvestorByName(_ context.Context, name string) (*db.Investor, error) {
	for _, inv := range s.investors {
		if inv.Name == name {
			return &inv, nil
		}
	}
	return nil, nil
}

func (s *stubStore) ReplaceInvestors(_ context.Context, investors []db.Investor) error {
	s.investors = investors
	return nil
}

func (s *stubStore) ListProjects(context.Context) ([]db.Project, error) {
	return s.projects, nil
}

func (s *stubStore) ReplaceProjects(_ context.Context, projects []db.Project) error {
	s.projects = projects
	return nil
}

func (s *stubStore) UpsertNote(_ context.Context, note db.InterestNote) error {
	s.notes[note.InvestorName+"\x00"+note.ProjectName] = note
	return nil
}

func (s *stubStore) GetNote(_ context.Context, investorName, projectName string) (*db.InterestNote, error) {
	if note, ok := s.notes[investorName+"\x00"+projectName]; ok {
		return &note, nil
	}
	return nil, nil
}

func (s *stubStore) ListNotesByInvestor(_ context.Context, investorName string) ([]db.InterestNote, error) {
	notes := make([]db.InterestNote, 0)
	for _, note := range s.notes {
		if note.InvestorName == investorName {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func testServer(store Store, apiKey string) *Server {
	return NewWithStore(&config.Config{Port: 8080, APIKey: apiKey, ReportDir: "."}, store)
}

func doRequest(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleListInvestors(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Investors []db.Investor `json:"investors"`
		Total     int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "Evergreen Capital", body.Investors[0].Name)
}

func TestHandleGetInvestor_NotFound(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors/Nobody", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleMatches(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors/Evergreen%20Capital/matches", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body MatchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total, "Wind Coop fails the funding floor, Well Drilling the sector")
	assert.Equal(t, "Solar Farm", body.Matches[0].ProjectName)
	assert.Equal(t, 1, body.Matches[0].ESGScore)
	assert.ElementsMatch(t, []string{"E", "S", "G"}, body.Dimensions)
}

func TestHandleMatches_DimensionParam(t *testing.T) {
	srv := testServer(newStubStore(), "")

	// Solar Farm's score comes from "green" (an E tag) but its raw "S:jobs"
	// token satisfies a S-only dimension filter.
	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors/Evergreen%20Capital/matches?dims=S", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body MatchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, []string{"S"}, body.Dimensions)
}

func TestHandleMatches_UnknownInvestor(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors/Nobody/matches", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleMatches_DataQualityError(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors/Bad%20Data%20Fund/matches", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body MatchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Matches, "error responses still carry an explicitly-empty match list")
	assert.Empty(t, body.Matches)
	assert.Contains(t, body.Error, "min_investment_size")
}

func TestHandleListProjects_ExploreFilters(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/projects?sector=energy&min_funding=10000&max_funding=50000", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Projects []db.Project `json:"projects"`
		Total    int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Solar Farm", body.Projects[0].Name)
}

func TestHandleUpsertNote(t *testing.T) {
	store := newStubStore()
	srv := testServer(store, "")

	put := func(interested bool, notes string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"investor_name":"Evergreen Capital","project_name":"Solar Farm","interested":%t,"notes":%q}`, interested, notes)
		req := httptest.NewRequest("PUT", "/notes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(t, srv, req)
	}

	require.Equal(t, http.StatusOK, put(true, "x").Code)
	require.Equal(t, http.StatusOK, put(false, "y").Code)

	// Last write wins: only the second value is retrievable.
	rec := doRequest(t, srv, httptest.NewRequest("GET", "/notes?investor=Evergreen+Capital&project=Solar+Farm", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var note db.InterestNote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.False(t, note.Interested)
	assert.Equal(t, "y", note.Notes)
}

func TestHandleUpsertNote_MissingKey(t *testing.T) {
	srv := testServer(newStubStore(), "")

	req := httptest.NewRequest("PUT", "/notes", strings.NewReader(`{"interested":true}`))
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetNotes_NotFound(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/notes?investor=Evergreen+Capital&project=Nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleImport(t *testing.T) {
	store := newStubStore()
	srv := testServer(store, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("investors", "investors.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name,sector_focus,min_investment_size,preferred_esg_criteria\nSolo Fund,energy,500,green\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.investors, 1)
	assert.Equal(t, "Solo Fund", store.investors[0].Name)
	assert.Len(t, store.projects, 3, "projects table untouched")
}

func TestHandleImport_BadHeaderLeavesDataAlone(t *testing.T) {
	store := newStubStore()
	srv := testServer(store, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("investors", "investors.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name,phone\nSolo Fund,555-0100\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, store.investors, 2, "failed import keeps previously loaded data")
}

func TestHandleFundingGaps(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/stats/funding-gaps", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		FundingGaps map[string]float64 `json:"funding_gaps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 23000.0, body.FundingGaps["energy"])
	assert.Equal(t, 20000.0, body.FundingGaps["water"])
}

func TestHandleTagFrequency(t *testing.T) {
	srv := testServer(newStubStore(), "")

	rec := doRequest(t, srv, httptest.NewRequest("GET", "/stats/tag-frequency", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TagFrequency map[string]int `json:"tag_frequency"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TagFrequency["E:green"])
	assert.Equal(t, 1, body.TagFrequency["S:jobs"])
}

func TestHandleEmailReport_InvalidRecipient(t *testing.T) {
	srv := testServer(newStubStore(), "")

	req := httptest.NewRequest("POST", "/investors/Evergreen%20Capital/email", strings.NewReader(`{"recipient":"not-an-email"}`))
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIKeyMiddleware(t *testing.T) {
	srv := testServer(newStubStore(), "secret")

	// Reads stay open.
	rec := doRequest(t, srv, httptest.NewRequest("GET", "/investors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Mutations require the key.
	req := httptest.NewRequest("PUT", "/notes", strings.NewReader(`{"investor_name":"a","project_name":"b"}`))
	rec = doRequest(t, srv, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("PUT", "/notes", strings.NewReader(`{"investor_name":"a","project_name":"b"}`))
	req.Header.Set("X-API-Key", "secret")
	rec = doRequest(t, srv, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrInvestorNotFound{Name: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "f", Message: "m"}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&matching.ErrInvalidMinInvestment{InvestorName: "x", Value: "y"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
